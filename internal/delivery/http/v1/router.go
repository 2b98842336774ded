package v1

import (
	"net/http"

	"go-futurejob-backend/config"
	"go-futurejob-backend/internal/delivery/http/middleware"
	"go-futurejob-backend/internal/delivery/http/response"
	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	ProfileUC domain.ProfileUsecase
	CareerUC  domain.CareerUsecase
	Tokens    *auth.TokenManager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Tokens, deps.Config.TokenTTLHours*3600)
		NewProfileHandler(protected, deps.ProfileUC, deps.CareerUC)
		NewQuizHandler(protected, deps.CareerUC)
	}

	return r
}
