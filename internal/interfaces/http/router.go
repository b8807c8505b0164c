package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	complaintusecases "resolveit/internal/application/complaint/usecases"
	feedbackusecases "resolveit/internal/application/feedback/usecases"
	userusecases "resolveit/internal/application/user/usecases"
	"resolveit/internal/infrastructure/auth"
	"resolveit/internal/infrastructure/config"
	"resolveit/internal/infrastructure/email"
	"resolveit/internal/infrastructure/repository"
	"resolveit/internal/interfaces/http/handlers"
	complainthandlers "resolveit/internal/interfaces/http/handlers/complaint"
	feedbackhandlers "resolveit/internal/interfaces/http/handlers/feedback"
	"resolveit/internal/interfaces/http/middleware"
	"resolveit/internal/interfaces/http/routes"
	"resolveit/internal/shared/logger"
	"resolveit/internal/shared/services/markdown"
)

// Router wires repositories, use cases, and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	authHandler      *handlers.AuthHandler
	userHandler      *handlers.UserHandler
	complaintHandler *complainthandlers.ComplaintHandler
	feedbackHandler  *feedbackhandlers.FeedbackHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
}

// NewRouter creates a router with all dependencies. redisClient may be nil,
// in which case auth endpoints run without rate limiting.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	notifier := email.NewSMTPEmailService(&cfg.Email, log)
	markdownService := markdown.NewMarkdownService()

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)

	submitComplaintUC := complaintusecases.NewSubmitComplaintUseCase(complaintRepo, log)
	getComplaintUC := complaintusecases.NewGetComplaintUseCase(complaintRepo, markdownService, log)
	listUserComplaintsUC := complaintusecases.NewListUserComplaintsUseCase(complaintRepo, log)
	listAllComplaintsUC := complaintusecases.NewListAllComplaintsUseCase(complaintRepo, log)
	updateStatusUC := complaintusecases.NewUpdateStatusUseCase(complaintRepo, userRepo, notifier, log)
	assignComplaintUC := complaintusecases.NewAssignComplaintUseCase(complaintRepo, userRepo, log)

	submitFeedbackUC := feedbackusecases.NewSubmitFeedbackUseCase(feedbackRepo, complaintRepo, log)
	listFeedbackUC := feedbackusecases.NewListFeedbackUseCase(feedbackRepo, log)
	averageRatingUC := feedbackusecases.NewAverageRatingUseCase(feedbackRepo, log)
	deleteFeedbackUC := feedbackusecases.NewDeleteFeedbackUseCase(feedbackRepo, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, 20, time.Minute)
	}

	return &Router{
		engine: engine,
		cfg:    cfg,
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, jwtService),
		userHandler: handlers.NewUserHandler(
			getProfileUC, updateProfileUC),
		complaintHandler: complainthandlers.NewComplaintHandler(
			submitComplaintUC, getComplaintUC, listUserComplaintsUC,
			listAllComplaintsUC, updateStatusUC, assignComplaintUC),
		feedbackHandler: feedbackhandlers.NewFeedbackHandler(
			submitFeedbackUC, listFeedbackUC, averageRatingUC, deleteFeedbackUC),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:    rateLimiter,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupComplaintRoutes(r.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: r.complaintHandler,
		FeedbackHandler:  r.feedbackHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupFeedbackRoutes(r.engine, &routes.FeedbackRouteConfig{
		FeedbackHandler: r.feedbackHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
