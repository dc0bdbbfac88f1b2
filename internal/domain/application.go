package domain

import (
	"context"
	"time"
)

// Application status values. The set is flat: any status may replace any
// other via a status update, there is no enforced transition order.
const (
	ApplicationStatusApplied      = "applied"
	ApplicationStatusInterviewing = "interviewing"
	ApplicationStatusRejected     = "rejected"
	ApplicationStatusHired        = "hired"
)

// Application represents a job application belonging to a candidate.
// AppliedAt is stored without timezone information (naive wall-clock).
type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	JobTitle    string    `json:"job_title"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// ApplicationInput is the payload for creating an application under a candidate.
type ApplicationInput struct {
	JobTitle  string    `json:"job_title" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=applied interviewing rejected hired"`
	AppliedAt time.Time `json:"applied_at" validate:"required"`
}

// ApplicationStatusPatch is a sparse update restricted to the status field.
type ApplicationStatusPatch struct {
	Status *string `json:"status" validate:"omitempty,oneof=applied interviewing rejected hired"`
}

type ApplicationRepository interface {
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	ListByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	Create(ctx context.Context, app *Application) error
	Update(ctx context.Context, app *Application) error
}

type ApplicationUsecase interface {
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	ListByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	CreateForCandidate(ctx context.Context, candidateID string, input ApplicationInput) (*Application, error)
	UpdateStatus(ctx context.Context, id string, patch ApplicationStatusPatch) (*Application, error)
}
