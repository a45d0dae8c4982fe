package storage_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/oneconcern/vaultmon/pkg/storage"
	"github.com/oneconcern/vaultmon/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInstrument(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "MBA/note.md", []byte("note"), 0644))
	store := storage.Instrument(zap.New(core), localfs.New(fs))
	ctx := context.Background()

	assert.Equal(t, "localfs", store.String())

	_, err := store.Stat(ctx, "MBA/note.md")
	require.NoError(t, err)
	b, err := storage.ReadAll(ctx, store, "MBA/note.md")
	require.NoError(t, err)
	assert.Equal(t, "note", string(b))
	require.NoError(t, store.Put(ctx, "MBA/note.md", bytes.NewBufferString("updated")))
	entries, err := store.ReadDir(ctx, "MBA")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	_, err = store.Get(ctx, "MBA/missing.md")
	require.Error(t, err)

	ops := logs.All()
	require.Len(t, ops, 5)
	for i, op := range []string{"storage.stat", "storage.get", "storage.put", "storage.readdir", "storage.get"} {
		assert.Equal(t, op, ops[i].Message)
		assert.Equal(t, "localfs", ops[i].ContextMap()["store"])
	}
	assert.Equal(t, "MBA/missing.md", ops[4].ContextMap()["key"])
	assert.Contains(t, ops[4].ContextMap()["error"], "not found")
}
