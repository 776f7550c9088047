package usecase

import (
	"context"
	"errors"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (u *jobUsecase) PostJob(ctx context.Context, employerID string, job *domain.Job) error {
	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}

	job.EmployerID = employerID

	return u.jobRepo.Create(ctx, job)
}

// GetJobDetail builds the role-dependent view of a job:
//   - intern viewer: application_status reports whether this intern already applied
//   - owning employer: applications list plus the manage affordance
//   - non-owning employer: the intern-shaped view with application_status false
func (u *jobUsecase) GetJobDetail(ctx context.Context, viewerID, viewerRole string, id int64) (*domain.JobDetail, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	detail := &domain.JobDetail{Job: *job}

	if viewerRole == domain.RoleEmployer && job.EmployerID == viewerID {
		applications, err := u.applicationRepo.GetByJobID(ctx, id)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		detail.CanManage = true
		detail.Applications = applications
		return detail, nil
	}

	if viewerRole == domain.RoleIntern {
		applied, err := u.applicationRepo.CheckExists(ctx, id, viewerID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		detail.ApplicationStatus = applied
	}

	return detail, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, pageSize, offset)
}

// DeleteJob removes a job. Only the owning employer may delete it; the
// schema cascades the delete to the job's applications.
func (u *jobUsecase) DeleteJob(ctx context.Context, employerID string, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if job.EmployerID != employerID {
		return apperror.Forbidden("You can only delete your own jobs")
	}

	return u.jobRepo.Delete(ctx, id)
}
