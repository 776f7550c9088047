package domain

import (
	"context"
	"time"
)

// Application represents an intern's submission against a specific job.
// At most one application exists per (job, intern) pair, enforced by a
// unique index in the schema in addition to the usecase pre-check.
type Application struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"job_id"`
	InternUserID   string    `json:"intern_user_id"`
	Essay          string    `json:"essay"`
	Resume         []byte    `json:"resume,omitempty"` // raw bytes; base64 only in JSON transport
	ResumeFilename string    `json:"resume_filename"`
	CreatedAt      time.Time `json:"created_at"`

	// Joined data for list responses
	InternName *string `json:"intern_name,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
}

// ResumeUpload carries a validated file attachment into the usecase.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	CheckExists(ctx context.Context, jobID int64, userID string) (bool, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Intern operations
	ApplyToJob(ctx context.Context, userID string, jobID int64, essay string, resume *ResumeUpload) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ListByJobID(ctx context.Context, userID string, jobID int64) ([]Application, error)
	GetApplicationDetail(ctx context.Context, userID string, applicationID int64) (*Application, error)
}
