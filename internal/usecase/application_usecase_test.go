package usecase_test

import (
	"context"
	"testing"

	"go-internship-backend/internal/domain"
	"go-internship-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testMaxResumeBytes = 5 << 20

func pdfResume() *domain.ResumeUpload {
	return &domain.ResumeUpload{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Data:        append([]byte("%PDF-1.4 "), []byte("I am motivated")...),
	}
}

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 7, EmployerID: "emp-1"}

	t.Run("Should create application with the uploaded bytes", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		upload := pdfResume()
		mockJobs.On("GetByID", ctx, int64(7)).Return(job, nil)
		mockApps.On("CheckExists", ctx, int64(7), "intern-1").Return(false, nil)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Application)
			assert.Equal(t, "I am motivated", a.Essay)
			assert.Equal(t, upload.Data, a.Resume)
			assert.Equal(t, "resume.pdf", a.ResumeFilename)
		})

		app, err := uc.ApplyToJob(ctx, "intern-1", 7, "I am motivated", upload)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), app.JobID)
		assert.Equal(t, "intern-1", app.InternUserID)
		mockApps.AssertExpectations(t)
	})

	t.Run("Should reject empty essay", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), testMaxResumeBytes)

		_, err := uc.ApplyToJob(ctx, "intern-1", 7, "", pdfResume())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Essay")
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject missing resume file", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), testMaxResumeBytes)

		_, err := uc.ApplyToJob(ctx, "intern-1", 7, "I am motivated", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Resume file is required")
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject oversize resume", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), 16)

		_, err := uc.ApplyToJob(ctx, "intern-1", 7, "I am motivated", pdfResume())
		assert.Error(t, err)
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject disallowed file type", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), testMaxResumeBytes)

		upload := &domain.ResumeUpload{
			Filename:    "resume.exe",
			ContentType: "application/octet-stream",
			Data:        []byte("MZ\x90\x00 definitely not a resume"),
		}

		_, err := uc.ApplyToJob(ctx, "intern-1", 7, "I am motivated", upload)
		assert.Error(t, err)
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should report not found for a missing job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		mockJobs.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.ApplyToJob(ctx, "intern-1", 99, "I am motivated", pdfResume())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should reject a second application for the same job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		mockJobs.On("GetByID", ctx, int64(7)).Return(job, nil)
		mockApps.On("CheckExists", ctx, int64(7), "intern-1").Return(true, nil)

		_, err := uc.ApplyToJob(ctx, "intern-1", 7, "I am motivated", pdfResume())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map a storage-level duplicate to the same conflict", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		// Concurrent submission: the pre-check passes but the unique index trips
		mockJobs.On("GetByID", ctx, int64(7)).Return(job, nil)
		mockApps.On("CheckExists", ctx, int64(7), "intern-1").Return(false, nil)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrAlreadyApplied)

		_, err := uc.ApplyToJob(ctx, "intern-1", 7, "I am motivated", pdfResume())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})
}

func TestApplicationReviewAuthorization(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 7, EmployerID: "emp-1"}
	app := &domain.Application{ID: 3, JobID: 7, InternUserID: "intern-1", Essay: "I am motivated"}

	t.Run("Should return detail to the owning employer", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		mockApps.On("GetByID", ctx, int64(3)).Return(app, nil)
		mockJobs.On("GetByID", ctx, int64(7)).Return(job, nil)

		got, err := uc.GetApplicationDetail(ctx, "emp-1", 3)
		assert.NoError(t, err)
		assert.Equal(t, "I am motivated", got.Essay)
	})

	t.Run("Should forbid a non-owning employer", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		mockApps.On("GetByID", ctx, int64(3)).Return(app, nil)
		mockJobs.On("GetByID", ctx, int64(7)).Return(job, nil)

		_, err := uc.GetApplicationDetail(ctx, "emp-2", 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})

	t.Run("Should report not found for a missing application", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), testMaxResumeBytes)

		mockApps.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetApplicationDetail(ctx, "emp-1", 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should forbid listing applications for another employer's job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, testMaxResumeBytes)

		mockJobs.On("GetByID", ctx, int64(7)).Return(job, nil)

		_, err := uc.ListByJobID(ctx, "emp-2", 7)
		assert.Error(t, err)
		mockApps.AssertNotCalled(t, "GetByJobID", mock.Anything, mock.Anything)
	})
}
