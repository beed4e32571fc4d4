package usecase

import (
	"context"
	"crypto/subtle"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	username     string
	password     string
	passwordHash string
}

// NewAuthUsecase checks logins against the single configured admin
// credential. When a bcrypt hash is configured it takes precedence over the
// plaintext password.
func NewAuthUsecase(username, password, passwordHash string) domain.AuthUsecase {
	return &authUsecase{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
	}
}

func (u *authUsecase) Login(ctx context.Context, username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1

	var passOK bool
	switch {
	case u.passwordHash != "":
		passOK = bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
	case u.password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) == 1
	}
	// With neither configured, passOK stays false and everything is rejected.

	if !userOK || !passOK {
		return apperror.Unauthorized("Invalid username or password")
	}
	return nil
}
