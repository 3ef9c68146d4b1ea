package fakeserver

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	hash, err := hashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := comparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = comparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := generateToken(42, time.Hour)
	req.NoError(err)

	userID, err := validateToken(token)
	req.NoError(err)
	req.Equal(42, userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	req := require.New(t)

	token, err := generateToken(42, -time.Minute)
	req.NoError(err)

	_, err = validateToken(token)
	req.Error(err)
}
