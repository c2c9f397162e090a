package auth

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirvedev/ilan-backend/pkg/utils"
)

// memorySessionStore stands in for Redis.
type memorySessionStore struct {
	tokens map[string]bool
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{tokens: make(map[string]bool)}
}

func (s *memorySessionStore) Create() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(b)
	s.tokens[token] = true
	return token, nil
}

func (s *memorySessionStore) Validate(token string) bool {
	return s.tokens[token]
}

func (s *memorySessionStore) Invalidate(token string) error {
	delete(s.tokens, token)
	return nil
}

func TestGateLoginLogout(t *testing.T) {
	sessions := newMemorySessionStore()
	gate := NewGate("kirve2323", "kirve190523", "", sessions)

	token, err := gate.Login("kirve2323", "kirve190523")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, gate.Authenticated(token))

	require.NoError(t, gate.Logout(token))
	assert.False(t, gate.Authenticated(token))
}

func TestGateRejectsWrongCredentials(t *testing.T) {
	gate := NewGate("kirve2323", "kirve190523", "", newMemorySessionStore())

	cases := [][2]string{
		{"kirve2323", "wrong"},
		{"wrong", "kirve190523"},
		{"", ""},
	}
	for _, c := range cases {
		token, err := gate.Login(c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	}
}

func TestGateUnknownTokenNotAuthenticated(t *testing.T) {
	gate := NewGate("kirve2323", "kirve190523", "", newMemorySessionStore())
	assert.False(t, gate.Authenticated(""))
	assert.False(t, gate.Authenticated("made-up-token"))
}

func TestGateHashedPassword(t *testing.T) {
	hash, err := utils.HashPassword("kirve190523")
	require.NoError(t, err)

	// The hash wins over the plaintext field.
	gate := NewGate("kirve2323", "something-else", hash, newMemorySessionStore())

	token, err := gate.Login("kirve2323", "kirve190523")
	require.NoError(t, err)
	assert.True(t, gate.Authenticated(token))

	_, err = gate.Login("kirve2323", "something-else")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
