package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrAlreadyApplied = errors.New("application already exists")
)

type Job struct {
	ID          int64     `json:"id"`
	EmployerID  string    `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobDetail is the role-dependent view of a single job.
// Interns (and employers who do not own the job) get ApplicationStatus;
// the owning employer additionally gets the applications list and CanManage.
type JobDetail struct {
	Job
	ApplicationStatus bool          `json:"application_status"`
	CanManage         bool          `json:"can_manage"`
	Applications      []Application `json:"applications,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	PostJob(ctx context.Context, employerID string, job *Job) error
	GetJobDetail(ctx context.Context, viewerID, viewerRole string, id int64) (*JobDetail, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	DeleteJob(ctx context.Context, employerID string, id int64) error
}
