package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminalib/luminalib/pkg/storage"
)

func TestLocalRoundTrip(t *testing.T) {
	p, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "local", p.Name())

	ctx := context.Background()
	key, err := p.Save(ctx, "moby-dick.txt", []byte("Call me Ishmael."))
	require.NoError(t, err)
	assert.Equal(t, ".txt", filepath.Ext(key))

	data, err := p.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("Call me Ishmael."), data)

	require.NoError(t, p.Delete(ctx, key))
	_, err = p.Read(ctx, key)
	assert.Error(t, err)

	// 重复删除不报错
	assert.NoError(t, p.Delete(ctx, key))
}

func TestLocalUniqueKeys(t *testing.T) {
	p, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	a, err := p.Save(ctx, "book.pdf", []byte("a"))
	require.NoError(t, err)
	b, err := p.Save(ctx, "book.pdf", []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalRejectsTraversal(t *testing.T) {
	p, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = p.Read(context.Background(), "../etc/passwd")
	assert.Error(t, err)
}

func TestMemoryRoundTrip(t *testing.T) {
	p := storage.NewMemory()
	assert.Equal(t, "memory", p.Name())

	ctx := context.Background()
	key, err := p.Save(ctx, "notes.txt", []byte("hello"))
	require.NoError(t, err)

	data, err := p.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	require.NoError(t, p.Delete(ctx, key))
	_, err = p.Read(ctx, key)
	assert.Error(t, err)
}

func TestNewSelectsProvider(t *testing.T) {
	p, err := storage.New(&storage.Config{Provider: "memory"})
	require.NoError(t, err)
	assert.Equal(t, "memory", p.Name())

	_, err = storage.New(&storage.Config{Provider: "s3"})
	assert.Error(t, err)
}
