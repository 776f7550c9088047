package v1

import (
	"net/http"
	"strconv"

	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - the listing is visible to everyone
	public.GET("/jobs", handler.List)

	// PROTECTED routes - authentication required
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("/:id", handler.GetDetail)
		protectedJobs.POST("", handler.Create)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// List godoc
// @Summary      List jobs
// @Description  Get the job listing (no auth required)
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetail godoc
// @Summary      Get job details
// @Description  Role-dependent job view: interns see their application status, the owning employer sees the applications list.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobDetail}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	viewerID := c.GetString(string(domain.KeyUserID))
	viewerRole := c.GetString(string(domain.KeyUserRole))

	detail, err := h.jobUC.GetJobDetail(c.Request.Context(), viewerID, viewerRole, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", detail)
}

// Create godoc
// @Summary      Post a new job
// @Description  Create a new job listing (Employer only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	// 1. Role Check
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can post jobs"))
		return
	}

	// 2. Bind JSON
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// 3. Get User ID from context (AuthMiddleware)
	userID := c.GetString(string(domain.KeyUserID))

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.jobUC.PostJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently delete a job listing; only the owning employer may do this. Applications are removed with it.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can delete jobs"))
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
