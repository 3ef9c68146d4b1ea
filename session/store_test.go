package session

import (
	"testing"

	"cloudmeet-client/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, dir string) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	return db
}

func TestTokenStore_RoundTrip(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	store := NewTokenStore(db)

	_, err := store.Get()
	req.ErrorIs(err, errors.ErrNoToken)
	req.False(store.IsAuthenticated())

	req.NoError(store.Set("bearer-credential"))
	token, err := store.Get()
	req.NoError(err)
	req.Equal("bearer-credential", token)
	req.True(store.IsAuthenticated())

	req.NoError(store.Remove())
	_, err = store.Get()
	req.ErrorIs(err, errors.ErrNoToken)
	req.False(store.IsAuthenticated())
}

func TestTokenStore_RemoveAbsentIsNotAnError(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	store := NewTokenStore(db)
	req.NoError(store.Remove())
}

func TestTokenStore_SurvivesReopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	db := openTestDB(t, dir)
	req.NoError(NewTokenStore(db).Set("persisted-token"))
	req.NoError(db.Close())

	db = openTestDB(t, dir)
	defer db.Close()

	token, err := NewTokenStore(db).Get()
	req.NoError(err)
	req.Equal("persisted-token", token)
}
