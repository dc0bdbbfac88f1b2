package v1

import (
	"net/http"

	"candidate-management-api/config"
	"candidate-management-api/internal/delivery/http/middleware"
	"candidate-management-api/internal/delivery/http/response"
	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	ApplicationUC domain.ApplicationUsecase
	TokenManager  *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Welcome root
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Candidate Management API")
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewAuthHandler(v1, deps.AuthUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager))
	{
		NewCandidateHandler(protected, deps.CandidateUC, deps.ApplicationUC, deps.Config.DefaultPageLimit)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
