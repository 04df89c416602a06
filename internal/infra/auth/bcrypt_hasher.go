// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"linkup/config"
	"linkup/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using the bcrypt algorithm.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The work factor comes from configuration so environments can trade
// verification latency against brute-force resistance.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return &bcryptHasher{cost: cfg.BcryptCostOrDefault()}
}

// Hash generates a salted bcrypt hash from a plaintext password. bcrypt
// embeds a random salt in the output, so hashing the same password twice
// yields different strings.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// Check compares a plaintext password with a stored hash.
// A mismatch is reported as false, not as an error.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
