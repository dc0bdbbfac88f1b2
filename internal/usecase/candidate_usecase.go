package usecase

import (
	"context"
	"strings"
	"time"

	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

// List returns candidates in insertion order. Filter terms are lowercased
// before comparison; stored skills are already lowercase, so the overlap
// check in the repository is effectively case-insensitive.
func (u *candidateUsecase) List(ctx context.Context, offset, limit int, skills []string) ([]domain.Candidate, error) {
	return u.repo.List(ctx, offset, limit, lowerAll(skills))
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}
	return candidate, nil
}

func (u *candidateUsecase) Create(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidate := &domain.Candidate{
		FullName:  strings.ToLower(input.FullName),
		Email:     strings.ToLower(input.Email),
		Phone:     input.Phone,
		Skills:    lowerAll(input.Skills),
		CreatedAt: time.Now(),
	}

	if err := u.repo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Update applies a sparse merge: only fields present in the patch replace
// the stored values, and present string values are lowercased first.
// Phone is free text and is stored as supplied.
func (u *candidateUsecase) Update(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		existing.FullName = strings.ToLower(*patch.FullName)
	}
	if patch.Email != nil {
		existing.Email = strings.ToLower(*patch.Email)
	}
	if patch.Phone != nil {
		existing.Phone = patch.Phone
	}
	if patch.Skills != nil {
		existing.Skills = lowerAll(*patch.Skills)
	}

	if err := u.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func lowerAll(values []string) []string {
	if values == nil {
		return nil
	}
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}
