package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Intern routes
	interns := r.Group("/interns")
	{
		interns.POST("/jobs/:jobId/apply", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.ApplyToJob)
		interns.GET("/applications", handler.GetMyApplications)
	}

	// Employer routes
	employers := r.Group("/employers")
	{
		employers.GET("/jobs/:jobId/applications", handler.ListJobApplications)
		employers.GET("/applications/:id", handler.GetApplicationDetail)
	}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit an application with an essay and a resume file (Intern only). Multipart form: essay (text), resume (file).
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId   path      int     true  "Job ID"
// @Param        essay   formData  string  true  "Motivation essay"
// @Param        resume  formData  file    true  "Resume file (pdf, doc, docx, txt)"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interns/jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	// 1. Get user from context
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	// Only interns can apply
	if role != domain.RoleIntern {
		c.Error(apperror.Forbidden("Only interns can apply to jobs"))
		return
	}

	// 2. Parse job ID
	jobIDStr := c.Param("jobId")
	jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	// 3. Read the form. A missing file is a validation error, never a fault.
	essay := c.PostForm("essay")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resume := &domain.ResumeUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	// 4. Apply
	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), userID, jobID, essay, resume)
	if err != nil {
		c.Error(err)
		return
	}

	// The stored blob stays server-side; echo only the metadata
	app.Resume = nil

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current intern
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /interns/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Get all applications for a specific job (owning employer only)
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	// Only employers can view applications
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can view job applications"))
		return
	}

	jobIDStr := c.Param("jobId")
	jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListByJobID(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// GetApplicationDetail godoc
// @Summary      Get application detail
// @Description  Get one application including the essay and resume (owning employer only)
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplicationDetail(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can view application details"))
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	detail, err := h.applicationUC.GetApplicationDetail(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application detail retrieved", detail)
}
