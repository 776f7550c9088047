package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
	"go-internship-backend/pkg/security"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	maxResumeBytes  int64
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	maxResumeBytes int64,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		maxResumeBytes:  maxResumeBytes,
	}
}

// ApplyToJob submits an intern's application for a job.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID int64, essay string, resume *domain.ResumeUpload) (*domain.Application, error) {
	// 1. Validate the form fields
	if essay == "" {
		return nil, apperror.BadRequest("Essay is required")
	}
	if resume == nil || len(resume.Data) == 0 {
		return nil, apperror.BadRequest("Resume file is required")
	}
	if int64(len(resume.Data)) > uc.maxResumeBytes {
		return nil, apperror.BadRequest(fmt.Sprintf("Resume exceeds the %d MB limit", uc.maxResumeBytes/(1024*1024)))
	}
	if result := security.ValidateResume(resume.Filename, resume.Data, resume.ContentType); !result.Valid {
		return nil, apperror.BadRequest("Resume rejected: " + result.Error)
	}

	// 2. Validate job exists
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	// 3. Check for duplicate application
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// 4. Create application. The unique index catches the race the pre-check
	// cannot, so a concurrent duplicate lands on the same conflict.
	app := &domain.Application{
		JobID:          jobID,
		InternUserID:   userID,
		Essay:          essay,
		Resume:         resume.Data,
		ResumeFilename: resume.Filename,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// GetMyApplications returns all applications for the current intern
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	return uc.applicationRepo.GetByUserID(ctx, userID)
}

// ListByJobID returns all applications for a job (owning employer only)
func (uc *applicationUsecase) ListByJobID(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	if err := uc.validateJobOwnership(ctx, userID, jobID); err != nil {
		return nil, err
	}

	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// GetApplicationDetail returns one application including the resume blob.
// Only the employer owning the application's job may read it.
func (uc *applicationUsecase) GetApplicationDetail(ctx context.Context, userID string, applicationID int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.validateJobOwnership(ctx, userID, app.JobID); err != nil {
		return nil, err
	}

	return app, nil
}

// validateJobOwnership checks that the acting employer owns the job.
func (uc *applicationUsecase) validateJobOwnership(ctx context.Context, userID string, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if job.EmployerID != userID {
		return apperror.Forbidden("You can only view applications for your own jobs")
	}

	return nil
}
