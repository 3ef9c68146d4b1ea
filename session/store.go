//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_token_store.go -package=mocks

// Package session persists the bearer credential across process restarts.
// A token is treated as valid until the server rejects it; no expiry
// tracking happens on the client.
package session

import (
	stderrors "errors"

	"cloudmeet-client/errors"

	"github.com/dgraph-io/badger/v4"
)

// tokenKey is the single fixed key under which the credential lives.
var tokenKey = []byte("session:token")

type ITokenStore interface {
	Get() (string, error)
	Set(token string) error
	Remove() error
	IsAuthenticated() bool
}

type TokenStore struct {
	db *badger.DB
}

func NewTokenStore(db *badger.DB) ITokenStore {
	return &TokenStore{db: db}
}

// Get returns the stored token, or ErrNoToken when none is persisted.
func (s *TokenStore) Get() (string, error) {
	var token string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tokenKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			token = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return "", errors.ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *TokenStore) Set(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tokenKey, []byte(token))
	})
}

// Remove deletes the credential. Removing an absent token is not an error.
func (s *TokenStore) Remove() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(tokenKey)
	})
}

func (s *TokenStore) IsAuthenticated() bool {
	token, err := s.Get()
	return err == nil && token != ""
}
