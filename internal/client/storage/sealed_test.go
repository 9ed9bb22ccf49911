package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usersconsole/internal/common"
)

func TestSealedStore_Contract(t *testing.T) {
	s, err := Seal(context.Background(), NewMemoryStore(), []byte("hunter2"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestSealedStore_ValuesAreEncrypted(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	s, err := Seal(ctx, inner, []byte("hunter2"))
	require.NoError(t, err)

	require.NoError(t, s.SetMany(ctx, map[string]string{common.TokenKey: "tok-eve"}))

	raw, err := inner.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.NotContains(t, raw, "tok-eve")

	v, err := s.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-eve", v)

	_, err = inner.Get(ctx, SaltKey)
	assert.NoError(t, err, "salt is stored alongside the values")
}

func TestSealedStore_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	s, err := Seal(ctx, inner, []byte("hunter2"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "a", "secret"))

	other, err := Seal(ctx, inner, []byte("letmein"))
	require.NoError(t, err)
	_, err = other.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrUnsealFailed)

	same, err := Seal(ctx, inner, []byte("hunter2"))
	require.NoError(t, err)
	v, err := same.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "secret", v)
}

func TestSealedStore_RejectsTamperedOrMovedValues(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	s, err := Seal(ctx, inner, []byte("hunter2"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "a", "secret"))

	raw, err := inner.Get(ctx, "a")
	require.NoError(t, err)

	// same ciphertext under another key
	require.NoError(t, inner.Set(ctx, "b", raw))
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrUnsealFailed)

	flipped := []byte(raw)
	if flipped[len(flipped)-5] == 'A' {
		flipped[len(flipped)-5] = 'B'
	} else {
		flipped[len(flipped)-5] = 'A'
	}
	require.NoError(t, inner.Set(ctx, "a", string(flipped)))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrUnsealFailed)

	require.NoError(t, inner.Set(ctx, "c", "plain text"))
	_, err = s.Get(ctx, "c")
	assert.ErrorIs(t, err, ErrUnsealFailed)
}

func TestSealedStore_MissingKeyPassesThrough(t *testing.T) {
	s, err := Seal(context.Background(), NewMemoryStore(), []byte("hunter2"))
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSeal_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Seal(ctx, NewMemoryStore(), nil)
	assert.Error(t, err)

	inner := NewMemoryStore()
	require.NoError(t, inner.Set(ctx, SaltKey, "not base64!"))
	_, err = Seal(ctx, inner, []byte("hunter2"))
	assert.Error(t, err)

	closed := NewMemoryStore()
	require.NoError(t, closed.Close())
	_, err = Seal(ctx, closed, []byte("hunter2"))
	assert.ErrorIs(t, err, common.ErrStorageClosed)
}

func TestOpen_Sealed(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	s, err := Open(ctx, Options{Driver: DriverSQLite, DSN: dsn, Passphrase: "hunter2"})
	require.NoError(t, err)
	assert.IsType(t, &SealedStore{}, s)
	require.NoError(t, s.Set(ctx, common.ProfileKey, `{"id":"4"}`))
	require.NoError(t, s.Close())

	s, err = Open(ctx, Options{Driver: DriverSQLite, DSN: dsn, Passphrase: "hunter2"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	v, err := s.Get(ctx, common.ProfileKey)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"4"}`, v)
}
