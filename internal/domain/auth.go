package domain

import "context"

// Credentials is the login payload for the single administrative user.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthUsecase interface {
	// Login accepts or rejects the credential pair. There is no session or
	// token; the admin UI keeps its own logged-in flag.
	Login(ctx context.Context, username, password string) error
}
