package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword genera el hash bcrypt de un password en texto plano.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara el password plano con el hash almacenado.
func VerifyPassword(hash, password string) error {
	if hash == "" {
		return errors.New("hash vacío")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
