package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"candidate-management-api/internal/domain"
	"candidate-management-api/internal/usecase"
	"candidate-management-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthLogin(t *testing.T) {
	tokenManager := auth.NewTokenManager("test-secret", 15*time.Minute)

	hash, err := auth.HashPassword("admin", 10)
	assert.NoError(t, err)

	adminUser := &domain.User{
		ID:           "u1",
		Email:        "admin@example.com",
		PasswordHash: hash,
	}

	t.Run("Should issue a verifiable token on valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokenManager)

		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminUser, nil)

		token, err := uc.Login(context.Background(), "admin@example.com", "admin")

		assert.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)

		claims, err := tokenManager.Verify(token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Subject)
	})

	t.Run("Should fail with the uniform message on a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokenManager)

		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminUser, nil)

		_, err := uc.Login(context.Background(), "admin@example.com", "wrong")

		assert.Error(t, err)
		assert.Equal(t, "Incorrect username or password.", err.Error())
	})

	t.Run("Should fail with the same message when the user is missing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokenManager)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := uc.Login(context.Background(), "ghost@example.com", "admin")

		assert.Error(t, err)
		assert.Equal(t, "Incorrect username or password.", err.Error())
	})

	t.Run("Should fail with the same message on a lookup error", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokenManager)

		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(nil, errors.New("connection refused"))

		_, err := uc.Login(context.Background(), "admin@example.com", "admin")

		assert.Error(t, err)
		assert.Equal(t, "Incorrect username or password.", err.Error())
	})
}
