package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/kirvedev/ilan-backend/pkg/utils"
)

// ErrInvalidCredentials is the single failure for both unknown user and
// wrong password, so login responses never distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionStore persists the authenticated state between requests.
type SessionStore interface {
	Create() (token string, err error)
	Validate(token string) bool
	Invalidate(token string) error
}

// Gate decides whether the admin area is reachable. There is a single admin
// identity: a fixed username plus either an argon2id hash or a plaintext
// password from configuration (the hash wins when both are set).
type Gate struct {
	username     string
	password     string
	passwordHash string
	sessions     SessionStore
}

func NewGate(username, password, passwordHash string, sessions SessionStore) *Gate {
	return &Gate{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		sessions:     sessions,
	}
}

// Login checks the credential pair and, on success, mints a session token.
func (g *Gate) Login(username, password string) (string, error) {
	if !g.check(username, password) {
		return "", ErrInvalidCredentials
	}
	return g.sessions.Create()
}

// Authenticated reports the gate state for a given token.
func (g *Gate) Authenticated(token string) bool {
	return g.sessions.Validate(token)
}

// Logout clears the persisted session; a missing or unknown token is a no-op.
func (g *Gate) Logout(token string) error {
	return g.sessions.Invalidate(token)
}

func (g *Gate) check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1

	var passOK bool
	if g.passwordHash != "" {
		ok, err := utils.VerifyPassword(password, g.passwordHash)
		passOK = err == nil && ok
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	}

	return userOK && passOK
}
