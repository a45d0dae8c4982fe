// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oneconcern/vaultmon/pkg/storage"
	"github.com/oneconcern/vaultmon/pkg/storage/status"
	"github.com/spf13/afero"
)

const (
	// suffix of the staging files used to rewrite documents atomically
	stageSuffix = ".vaultmon-stage"

	defaultFileMode = 0644
)

// New creates a new local file system backed store.
//
// Keys are resolved against the root of the file system: callers usually
// pass an afero.BasePathFs rooted at the vault.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs: fs,
	}
}

// NewAt creates a store rooted at some directory of the OS file system
func NewAt(root string) storage.Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), root))
}

type localFS struct {
	fs afero.Fs
}

func fsPath(key string) (string, error) {
	k, err := storage.CleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(k), nil
}

func toStatusErr(key string, err error) error {
	if os.IsNotExist(err) {
		return status.ErrNotFound.Wrapf("%q", key)
	}
	return status.ErrStorage.Wrap(fmt.Errorf("%q: %w", key, err))
}

func (l *localFS) Stat(ctx context.Context, key string) (storage.Entry, error) {
	name, err := fsPath(key)
	if err != nil {
		return storage.Entry{}, err
	}
	fi, err := l.fs.Stat(name)
	if err != nil {
		return storage.Entry{}, toStatusErr(key, err)
	}
	return entryOf(filepath.ToSlash(name), fi), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	name, err := fsPath(key)
	if err != nil {
		return nil, err
	}
	fi, err := l.fs.Stat(name)
	if err != nil {
		return nil, toStatusErr(key, err)
	}
	if fi.IsDir() {
		return nil, status.ErrIsDir.Wrapf("%q", key)
	}
	t, err := l.fs.Open(name)
	if err != nil {
		return nil, toStatusErr(key, err)
	}
	return t, nil
}

// Put replaces a document: the content is staged in a temporary file next to the target,
// then renamed over it. The file mode of an existing document is preserved.
func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	name, err := fsPath(key)
	if err != nil {
		return err
	}
	mode := os.FileMode(defaultFileMode)
	if fi, ers := l.fs.Stat(name); ers == nil {
		if fi.IsDir() {
			return status.ErrIsDir.Wrapf("%q", key)
		}
		mode = fi.Mode().Perm()
	}

	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	stage, err := afero.TempFile(l.fs, dir, "."+base+".*"+stageSuffix)
	if err != nil {
		return toStatusErr(key, fmt.Errorf("staging: %w", err))
	}
	stageName := stage.Name()
	committed := false
	defer func() {
		if !committed {
			_ = l.fs.Remove(stageName)
		}
	}()

	if _, err = io.Copy(stage, source); err != nil {
		_ = stage.Close()
		return toStatusErr(key, fmt.Errorf("write record: %w", err))
	}
	if err = stage.Sync(); err != nil {
		_ = stage.Close()
		return toStatusErr(key, fmt.Errorf("sync record: %w", err))
	}
	if err = stage.Close(); err != nil {
		return toStatusErr(key, err)
	}
	if err = l.fs.Chmod(stageName, mode); err != nil {
		return toStatusErr(key, err)
	}
	/* Rename() is atomic on the file systems we care about */
	if err = l.fs.Rename(stageName, name); err != nil {
		return toStatusErr(key, err)
	}
	committed = true
	return nil
}

func (l *localFS) ReadDir(ctx context.Context, key string) ([]storage.Entry, error) {
	name, err := fsPath(key)
	if err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(l.fs, name)
	if err != nil {
		return nil, toStatusErr(key, err)
	}
	dir := filepath.ToSlash(name)
	res := make([]storage.Entry, 0, len(infos))
	for _, fi := range infos {
		if isStaging(fi.Name()) {
			continue
		}
		res = append(res, entryOf(storage.Join(dir, fi.Name()), fi))
	}
	return res, nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}

func entryOf(key string, fi os.FileInfo) storage.Entry {
	return storage.Entry{
		Key:   key,
		Name:  fi.Name(),
		IsDir: fi.IsDir(),
		Mode:  fi.Mode(),
		Size:  fi.Size(),
	}
}

func isStaging(name string) bool {
	return len(name) > len(stageSuffix) && name[len(name)-len(stageSuffix):] == stageSuffix
}
