package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"candidate-management-api/internal/domain"
	"candidate-management-api/internal/usecase"
	"candidate-management-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplicationCreateForCandidate(t *testing.T) {
	validate := validator.New()
	appliedAt := time.Date(2025, 7, 1, 17, 57, 3, 364000000, time.UTC)

	t.Run("Should create with lowercased job title for an existing candidate", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockCandRepo.On("GetByID", mock.Anything, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Application).ID = "a1"
			})

		app, err := uc.CreateForCandidate(context.Background(), "c1", domain.ApplicationInput{
			JobTitle:  "Web Developer",
			Status:    domain.ApplicationStatusApplied,
			AppliedAt: appliedAt,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, app.ID)
		assert.Equal(t, "c1", app.CandidateID)
		assert.Equal(t, "web developer", app.JobTitle)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, appliedAt, app.AppliedAt)
	})

	t.Run("Should strip the timezone offset but keep the wall clock", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockCandRepo.On("GetByID", mock.Anything, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		offset := time.FixedZone("CEST", 2*60*60)
		app, err := uc.CreateForCandidate(context.Background(), "c1", domain.ApplicationInput{
			JobTitle:  "Web Developer",
			Status:    domain.ApplicationStatusApplied,
			AppliedAt: time.Date(2025, 7, 1, 17, 57, 3, 364000000, offset),
		})

		assert.NoError(t, err)
		assert.Equal(t, appliedAt, app.AppliedAt)
		assert.Equal(t, time.UTC, app.AppliedAt.Location())
	})

	t.Run("Should return NotFound and persist nothing when the candidate is absent", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockCandRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.CreateForCandidate(context.Background(), "missing", domain.ApplicationInput{
			JobTitle:  "Web Developer",
			Status:    domain.ApplicationStatusApplied,
			AppliedAt: appliedAt,
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Candidate not found.", appErr.Message)
		mockAppRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		_, err := uc.CreateForCandidate(context.Background(), "c1", domain.ApplicationInput{
			JobTitle:  "Web Developer",
			Status:    "ghosted",
			AppliedAt: appliedAt,
		})

		assert.Error(t, err)
		mockAppRepo.AssertNotCalled(t, "Create")
	})
}

func TestApplicationUpdateStatus(t *testing.T) {
	validate := validator.New()
	appliedAt := time.Date(2025, 7, 1, 17, 57, 3, 364000000, time.UTC)

	seeded := func() *domain.Application {
		return &domain.Application{
			ID:          "a1",
			CandidateID: "c1",
			JobTitle:    "software developer",
			Status:      domain.ApplicationStatusApplied,
			AppliedAt:   appliedAt,
		}
	}

	t.Run("Should change only the status field", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockAppRepo.On("GetByID", mock.Anything, "a1").Return(seeded(), nil)
		mockAppRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		status := domain.ApplicationStatusHired
		updated, err := uc.UpdateStatus(context.Background(), "a1", domain.ApplicationStatusPatch{
			Status: &status,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusHired, updated.Status)
		// Everything else stays bit-identical
		assert.Equal(t, "software developer", updated.JobTitle)
		assert.Equal(t, appliedAt, updated.AppliedAt)
		assert.Equal(t, "c1", updated.CandidateID)
	})

	t.Run("Should allow any status to replace any other", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		hired := seeded()
		hired.Status = domain.ApplicationStatusHired
		mockAppRepo.On("GetByID", mock.Anything, "a1").Return(hired, nil)
		mockAppRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		status := domain.ApplicationStatusApplied
		updated, err := uc.UpdateStatus(context.Background(), "a1", domain.ApplicationStatusPatch{
			Status: &status,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, updated.Status)
	})

	t.Run("Should return NotFound when the application is absent", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockAppRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		status := domain.ApplicationStatusHired
		_, err := uc.UpdateStatus(context.Background(), "missing", domain.ApplicationStatusPatch{
			Status: &status,
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Application not found.", appErr.Message)
		mockAppRepo.AssertNotCalled(t, "Update")
	})
}

func TestApplicationListByCandidateID(t *testing.T) {
	validate := validator.New()

	t.Run("Should return an empty list for a candidate with no applications", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockCandRepo.On("GetByID", mock.Anything, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		mockAppRepo.On("ListByCandidateID", mock.Anything, "c1").Return([]domain.Application{}, nil)

		results, err := uc.ListByCandidateID(context.Background(), "c1")

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Should return NotFound when the candidate is absent", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockCandRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockCandRepo, validate)

		mockCandRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.ListByCandidateID(context.Background(), "missing")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		mockAppRepo.AssertNotCalled(t, "ListByCandidateID")
	})
}
