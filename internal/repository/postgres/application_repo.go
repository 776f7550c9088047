package postgres

import (
	"context"
	"errors"
	"go-internship-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on (job_id, intern_user_id)
// is the backstop against concurrent duplicate submissions; a violation maps to
// domain.ErrAlreadyApplied.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, intern_user_id, essay, resume, resume_filename, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	app.CreatedAt = time.Now()

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.InternUserID,
		app.Essay,
		app.Resume,
		app.ResumeFilename,
		app.CreatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// GetByID retrieves an application by ID with joined intern and job data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.intern_user_id, a.essay, a.resume, a.resume_filename, a.created_at,
			u.first_name || ' ' || u.last_name as intern_name,
			j.title as job_title
		FROM applications a
		LEFT JOIN users u ON a.intern_user_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.InternUserID, &app.Essay, &app.Resume, &app.ResumeFilename, &app.CreatedAt,
		&app.InternName, &app.JobTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with joined intern data.
// The resume blob is left out of list responses on purpose.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.intern_user_id, a.essay, a.resume_filename, a.created_at,
			u.first_name || ' ' || u.last_name as intern_name
		FROM applications a
		LEFT JOIN users u ON a.intern_user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.InternUserID, &app.Essay, &app.ResumeFilename, &app.CreatedAt,
			&app.InternName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

// GetByUserID retrieves all applications for an intern with job titles
func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.intern_user_id, a.essay, a.resume_filename, a.created_at,
			j.title as job_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.intern_user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.InternUserID, &app.Essay, &app.ResumeFilename, &app.CreatedAt,
			&app.JobTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

// CheckExists checks if an application already exists for the job/user combination
func (r *applicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND intern_user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, userID).Scan(&exists)
	return exists, err
}
