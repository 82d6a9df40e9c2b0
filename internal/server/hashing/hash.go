// Package hashing implements one-way password hashing and verification.
// Credentials are never compared as plaintext: the stored value is a bcrypt
// hash carrying its own salt and work factor, so verification needs no
// external state.
package hashing

import "golang.org/x/crypto/bcrypt"

// Hasher is the password hashing contract used by the account service.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash string, candidate string) bool
}

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given bcrypt cost.
// A cost <= 0 falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash string, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
