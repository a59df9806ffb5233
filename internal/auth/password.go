package auth

import (
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// BcryptHasher реализует одностороннее хеширование паролей через bcrypt.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", e.Wrap("bcrypt hash failed", err)
	}

	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
