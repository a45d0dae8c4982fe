// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/oneconcern/vaultmon/pkg/storage/status"
)

// Root is the key of the vault root directory
const Root = "."

// MaxDocumentSize bounds the size of a document read into memory
const MaxDocumentSize = 16 * 1024 * 1024

// Entry describes an item found in a vault directory.
type Entry struct {
	Key   string
	Name  string
	IsDir bool
	Mode  os.FileMode
	Size  int64
}

// Store implementations know how to read and rewrite documents of a vault.
//
// Implementations of this interface are assumed to be fairly simple.
// Put must replace the content of a key atomically: a reader never sees a
// truncated document.
type Store interface {
	String() string
	Stat(context.Context, string) (Entry, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	// ReadDir lists the immediate entries of a directory, sorted by name
	ReadDir(context.Context, string) ([]Entry, error)
}

// ReadAll reads a whole document from a store
func ReadAll(ctx context.Context, store Store, key string) ([]byte, error) {
	reader, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	object, err := ioutil.ReadAll(io.LimitReader(reader, MaxDocumentSize+1))
	if err != nil {
		return nil, status.ErrStorage.Wrap(err)
	}
	if len(object) > MaxDocumentSize {
		return nil, status.ErrStorage.Wrapf("document %q exceeds %d bytes", key, MaxDocumentSize)
	}
	return object, nil
}

// CleanKey normalizes a key. Keys escaping the vault root are rejected.
func CleanKey(key string) (string, error) {
	k := path.Clean(strings.ReplaceAll(key, `\`, "/"))
	k = strings.TrimPrefix(k, "/")
	if k == "" {
		k = Root
	}
	if k == ".." || strings.HasPrefix(k, "../") {
		return "", status.ErrInvalidKey.Wrapf("%q is outside of the vault", key)
	}
	return k, nil
}

// Dir returns the key of the directory holding a key
func Dir(key string) string {
	return path.Dir(key)
}

// Join builds a key from its elements
func Join(elem ...string) string {
	return path.Join(elem...)
}

// IsHidden tells if a name is a hidden file or directory (e.g. .obsidian)
func IsHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}
