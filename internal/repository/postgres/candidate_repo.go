package postgres

import (
	"context"
	"errors"

	"candidate-management-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// List returns candidates in insertion order, skipping offset and capping
// at limit. A non-empty skills slice restricts the result to candidates
// whose skills array overlaps it (the && operator, set intersection).
func (r *candidateRepository) List(ctx context.Context, offset, limit int, skills []string) ([]domain.Candidate, error) {
	query := `
		SELECT id, full_name, email, phone, skills, created_at
		FROM candidates`
	args := []interface{}{}

	if len(skills) > 0 {
		query += ` WHERE skills && $1`
		args = append(args, pq.Array(skills))
		query += ` OFFSET $2 LIMIT $3`
	} else {
		query += ` OFFSET $1 LIMIT $2`
	}
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		var candidateSkills []string
		if err := rows.Scan(
			&c.ID, &c.FullName, &c.Email, &c.Phone, pq.Array(&candidateSkills), &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Skills = candidateSkills
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `
		SELECT id, full_name, email, phone, skills, created_at
		FROM candidates WHERE id = $1`

	var c domain.Candidate
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, pq.Array(&skills), &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Skills = skills
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	query := `
		INSERT INTO candidates (id, full_name, email, phone, skills, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.FullName, candidate.Email, candidate.Phone,
		pq.Array(candidate.Skills), candidate.CreatedAt,
	)
	return err
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		UPDATE candidates
		SET full_name = $2, email = $3, phone = $4, skills = $5
		WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.FullName, candidate.Email, candidate.Phone,
		pq.Array(candidate.Skills),
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
