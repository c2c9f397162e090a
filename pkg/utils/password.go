package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength  = 16
	keyLength   = 32
	timeCost    = 3
	memoryCost  = 64 * 1024
	parallelism = 2
)

// HashPassword hashes a password using Argon2id.
// Format: $argon2id$v=19$m=65536,t=3,p=2$salt$hash
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, timeCost, memoryCost, parallelism, keyLength)

	return "$argon2id$v=19$m=65536,t=3,p=2$" +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword verifies a password against a hash produced by HashPassword.
func VerifyPassword(password, hashedPassword string) (bool, error) {
	parts := splitHash(hashedPassword)
	if parts == nil {
		return false, errors.New("invalid hash format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, err
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, timeCost, memoryCost, parallelism, keyLength)
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}

// splitHash returns [salt, hash] from the encoded form, or nil when the
// format is not the one HashPassword emits.
func splitHash(encoded string) []string {
	const prefix = "$argon2id$v=19$m=65536,t=3,p=2$"
	if len(encoded) <= len(prefix) || encoded[:len(prefix)] != prefix {
		return nil
	}
	rest := encoded[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '$' {
			return []string{rest[:i], rest[i+1:]}
		}
	}
	return nil
}
