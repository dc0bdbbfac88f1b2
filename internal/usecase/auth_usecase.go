package usecase

import (
	"context"

	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"
	"candidate-management-api/pkg/auth"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	tokenManager *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokenManager *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// Login verifies the credentials and issues an access token. A missing
// user, a lookup error and a password mismatch all produce the same
// response so nothing leaks about which check failed.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, apperror.Unauthorized("Incorrect username or password.")
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Incorrect username or password.")
	}

	token, err := u.tokenManager.Issue(user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AccessToken{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
