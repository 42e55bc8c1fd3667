package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/enviconnect/enviconnect/internal/handler/http/middleware"
	"github.com/enviconnect/enviconnect/internal/usecase"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

type Router struct {
	authHandler    *AuthHandler
	projectHandler *ProjectHandler
	profileHandler *ProfileHandler
	jwtService     usecase.JWTService
	uploadsDir     string
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	projectUsecase usecasecontract.IProjectUseCase,
	profileUsecase usecasecontract.IProfileUseCase,
	jwtService usecase.JWTService,
	uploadsDir string,
) *Router {
	return &Router{
		authHandler:    NewAuthHandler(authUsecase),
		projectHandler: NewProjectHandler(projectUsecase),
		profileHandler: NewProfileHandler(profileUsecase),
		jwtService:     jwtService,
		uploadsDir:     uploadsDir,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded project images are served straight off disk.
	router.Static("/uploads", r.uploadsDir)

	auth := router.Group("/api/auth")
	{
		auth.GET("/check-username/:username", r.authHandler.CheckUsername)
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/send-otp", r.authHandler.SendOTP)
		auth.POST("/verify-otp", r.authHandler.VerifyOTP)
	}

	projects := router.Group("/api/projects")
	{
		projects.GET("", r.projectHandler.ListProjects)
		projects.POST("/add", r.projectHandler.CreateProject)
		projects.GET("/created/:ownerId", r.projectHandler.ListProjectsByOwner)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.POST("/:id/join", r.projectHandler.JoinProject)
	}

	users := router.Group("/api/users")
	{
		users.GET("/:id/profile", r.profileHandler.GetProfile)

		// Profile mutation requires the session token issued at login
		// and only for the caller's own profile.
		protected := users.Group("/")
		protected.Use(middleware.AuthMiddleWare(r.jwtService), middleware.RequireSelf())
		protected.PUT("/:id/profile", r.profileHandler.UpdateProfile)
	}
}
