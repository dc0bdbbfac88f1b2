package usecase

import (
	"context"
	"strings"
	"time"

	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	candidateRepo   domain.CandidateRepository
	validate        *validator.Validate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	candidateRepo domain.CandidateRepository,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		validate:        validate,
	}
}

func (uc *applicationUsecase) List(ctx context.Context) ([]domain.Application, error) {
	return uc.applicationRepo.List(ctx)
}

func (uc *applicationUsecase) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperror.NotFound("Application not found.")
	}
	return app, nil
}

// ListByCandidateID resolves the candidate first so a missing candidate
// surfaces as 404 rather than an empty list. A candidate with no
// applications yields an empty slice.
func (uc *applicationUsecase) ListByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	candidate, err := uc.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}

	return uc.applicationRepo.ListByCandidateID(ctx, candidate.ID)
}

// CreateForCandidate creates an application scoped to an existing
// candidate. The existence check runs before anything is persisted, so a
// missing candidate never leaves a dangling application behind.
func (uc *applicationUsecase) CreateForCandidate(ctx context.Context, candidateID string, input domain.ApplicationInput) (*domain.Application, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidate, err := uc.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}

	app := &domain.Application{
		CandidateID: candidate.ID,
		JobTitle:    strings.ToLower(input.JobTitle),
		Status:      input.Status,
		AppliedAt:   stripTimezone(input.AppliedAt),
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus applies a sparse merge restricted to the status field:
// job_title and applied_at keep their stored values untouched.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, id string, patch domain.ApplicationStatusPatch) (*domain.Application, error) {
	if err := uc.validate.Struct(patch); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		existing.Status = *patch.Status
	}

	if err := uc.applicationRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// stripTimezone discards the offset while preserving the wall-clock
// fields, so a value supplied with a timezone is stored naive.
func stripTimezone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
