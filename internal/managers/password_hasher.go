package managers

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher outlines the contract for one-way password hashing and comparison.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}

// BcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The salt is embedded in the produced hash, so two hashes of the same password differ.
type BcryptHasher struct{}

// NewPasswordHasher creates a new bcrypt-backed password hasher with the default work factor.
func NewPasswordHasher() PasswordHasher {
	log.Info("Initializing password hasher")
	return &BcryptHasher{}
}

// Hash derives a salted bcrypt hash from the plaintext password.
func (bh *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Compare reports whether the plaintext password matches the stored hash under
// the parameters embedded in the hash.
func (bh *BcryptHasher) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
