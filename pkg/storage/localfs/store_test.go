// Copyright © 2018 One Concern

package localfs

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/oneconcern/vaultmon/pkg/errors"
	"github.com/oneconcern/vaultmon/pkg/storage"
	"github.com/oneconcern/vaultmon/pkg/storage/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat(t *testing.T) {
	bs, _ := setupStore(t)

	e, err := bs.Stat(context.Background(), "MBA/program-index.md")
	require.NoError(t, err)
	assert.False(t, e.IsDir)
	assert.Equal(t, "program-index.md", e.Name)
	assert.Equal(t, "MBA/program-index.md", e.Key)

	e, err = bs.Stat(context.Background(), "MBA/Accounting")
	require.NoError(t, err)
	assert.True(t, e.IsDir)

	_, err = bs.Stat(context.Background(), "MBA/missing.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestGet(t *testing.T) {
	bs, _ := setupStore(t)

	b, err := storage.ReadAll(context.Background(), bs, "MBA/Accounting/note.md")
	require.NoError(t, err)
	assert.Equal(t, "this is the note", string(b))

	_, err = bs.Get(context.Background(), "MBA/Accounting")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrIsDir))

	_, err = bs.Get(context.Background(), "../outside.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidKey))
}

func TestReadDir(t *testing.T) {
	bs, _ := setupStore(t)

	entries, err := bs.ReadDir(context.Background(), "MBA")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "MBA/Accounting", entries[0].Key)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "MBA/program-index.md", entries[1].Key)

	root, err := bs.ReadDir(context.Background(), storage.Root)
	require.NoError(t, err)
	require.Len(t, root, 1)
	assert.Equal(t, "MBA", root[0].Key)

	_, err = bs.ReadDir(context.Background(), "nowhere")
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestPut(t *testing.T) {
	bs, fs := setupStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Chmod("MBA/Accounting/note.md", 0600))

	content := bytes.NewBufferString("here we go once again")
	require.NoError(t, bs.Put(ctx, "MBA/Accounting/note.md", content))

	b, err := storage.ReadAll(ctx, bs, "MBA/Accounting/note.md")
	require.NoError(t, err)
	assert.Equal(t, "here we go once again", string(b))

	fi, err := fs.Stat("MBA/Accounting/note.md")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())

	// no staging file left behind
	entries, err := afero.ReadDir(fs, "MBA/Accounting")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, bs.Put(ctx, "MBA/new.md", bytes.NewBufferString("new")))
	b, err = storage.ReadAll(ctx, bs, "MBA/new.md")
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
}

func TestPutReadOnly(t *testing.T) {
	_, fs := setupStore(t)
	bs := New(afero.NewReadOnlyFs(fs))

	err := bs.Put(context.Background(), "MBA/Accounting/note.md", bytes.NewBufferString("clobbered"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrStorage))

	b, err := afero.ReadFile(fs, "MBA/Accounting/note.md")
	require.NoError(t, err)
	assert.Equal(t, "this is the note", string(b))
}

func TestOSStore(t *testing.T) {
	dir, err := ioutil.TempDir("", "vaultmon-localfs")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MBA"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "MBA", "note.md"), []byte("before"), 0640))

	bs := NewAt(dir)
	assert.Contains(t, bs.String(), "localfs@")

	require.NoError(t, bs.Put(context.Background(), "MBA/note.md", bytes.NewBufferString("after")))
	b, err := ioutil.ReadFile(filepath.Join(dir, "MBA", "note.md"))
	require.NoError(t, err)
	assert.Equal(t, "after", string(b))

	fi, err := os.Stat(filepath.Join(dir, "MBA", "note.md"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), fi.Mode().Perm())
}

func setupStore(t testing.TB) (storage.Store, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	fakeFile(t, fs, "MBA/program-index.md", "this is the program")
	fakeFile(t, fs, "MBA/Accounting/note.md", "this is the note")

	return New(fs), fs
}

func fakeFile(t testing.TB, fs afero.Fs, file, content string) {
	require.NoError(t, fs.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, afero.WriteFile(fs, file, []byte(content), 0644))
}
