package domain

import "context"

// User is a credential subject. Records are created out-of-band by the
// seeding command; the API only ever reads them for login verification.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// AccessToken is the login response payload.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*AccessToken, error)
}
