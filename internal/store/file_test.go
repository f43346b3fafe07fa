package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecraft/homecraft-cli/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStore_Roundtrip(t *testing.T) {
	s := newTestStore(t)

	user := &model.User{
		ID:           1,
		Email:        "a@b.com",
		Name:         "Ada Lovelace",
		IsAdmin:      true,
		CartProducts: []model.CartProduct{{ProductID: 7, Quantity: 2}},
	}
	require.NoError(t, s.Save("abc123", 1700000000000, user))

	creds, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "abc123", creds.Token)
	assert.Equal(t, int64(1700000000000), creds.ExpiresAt)
	assert.Equal(t, user, creds.User)
}

func TestFileStore_AbsentIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	tok, exp, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Zero(t, exp)
}

func TestFileStore_IncompleteTripleIsAbsent(t *testing.T) {
	s := newTestStore(t)

	// Token written but no user snapshot, as after a crash between
	// the two writes of a login.
	require.NoError(t, s.SaveToken("abc123", 1700000000000))

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	// The token-only read still works for the transport layer.
	tok, exp, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)
	assert.Equal(t, int64(1700000000000), exp)
}

func TestFileStore_TamperedEntriesAreAbsent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("abc123", 1700000000000, &model.User{ID: 1}))

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, expirationEntry), []byte("not-a-number"), 0o600))
	tok, exp, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Zero(t, exp)

	require.NoError(t, s.SaveToken("abc123", 1700000000000))
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, userEntry), []byte("{broken"), 0o600))
	creds, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStore_ClearToken_KeepsUser(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("abc123", 1700000000000, &model.User{ID: 1}))

	require.NoError(t, s.ClearToken())

	tok, _, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)

	// Full triple is now incomplete and reads as absent.
	creds, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStore_Clear_IsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("abc123", 1700000000000, &model.User{ID: 1}))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
