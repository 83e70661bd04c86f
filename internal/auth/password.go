package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	apperrors "portfolio/internal/errors"
)

const bcryptCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordTag is the validate tag enforcing MaxPasswordBytes on a string field.
const PasswordTag = "bcryptlen"

// HashPassword returns a salted bcrypt hash of the password.
// Two calls with the same input produce different hashes.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperrors.ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash.
// A malformed hash never matches.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterValidations adds PasswordTag to v. The builtin max tag counts
// characters, so multi-byte passwords need their own byte check.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation(PasswordTag, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
}
