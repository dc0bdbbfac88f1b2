package domain

import (
	"context"
	"time"
)

// Candidate is the persisted candidate record. Textual fields are stored
// lowercased; phone is free text and kept exactly as supplied.
type Candidate struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateInput is the full payload for candidate creation.
type CandidateInput struct {
	FullName string   `json:"full_name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    *string  `json:"phone"`
	Skills   []string `json:"skills" validate:"required"`
}

// CandidatePatch is a sparse update: nil fields are left untouched,
// non-nil fields replace the stored values.
type CandidatePatch struct {
	FullName *string   `json:"full_name" validate:"omitempty,min=1"`
	Email    *string   `json:"email" validate:"omitempty,email"`
	Phone    *string   `json:"phone"`
	Skills   *[]string `json:"skills"`
}

type CandidateRepository interface {
	List(ctx context.Context, offset, limit int, skills []string) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
}

type CandidateUsecase interface {
	List(ctx context.Context, offset, limit int, skills []string) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Create(ctx context.Context, input CandidateInput) (*Candidate, error)
	Update(ctx context.Context, id string, patch CandidatePatch) (*Candidate, error)
}
