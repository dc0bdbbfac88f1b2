package postgres

import (
	"context"
	"errors"

	"candidate-management-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT id, candidate_id, job_title, status, applied_at
		FROM applications`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT id, candidate_id, job_title, status, applied_at
		FROM applications WHERE id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.CandidateID, &app.JobTitle, &app.Status, &app.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) ListByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	query := `
		SELECT id, candidate_id, job_title, status, applied_at
		FROM applications WHERE candidate_id = $1`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows)
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	query := `
		INSERT INTO applications (id, candidate_id, job_title, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.CandidateID, app.JobTitle, app.Status, app.AppliedAt,
	)
	return err
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.Application) error {
	query := `
		UPDATE applications
		SET job_title = $2, status = $3, applied_at = $4
		WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, app.ID, app.JobTitle, app.Status, app.AppliedAt)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	applications := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.CandidateID, &app.JobTitle, &app.Status, &app.AppliedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
