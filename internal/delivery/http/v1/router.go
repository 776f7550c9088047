package v1

import (
	"net/http"
	"time"

	"go-internship-backend/config"
	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	Sessions      *session.Manager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Resume uploads arrive as multipart forms; keep the in-memory part bounded
	r.MaxMultipartMemory = int64(deps.Config.MaxResumeSizeMB) << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimit := middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Sessions, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Sessions, loginLimit)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
