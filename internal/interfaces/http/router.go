package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	feedusecases "revu/internal/application/feed/usecases"
	relationshipusecases "revu/internal/application/relationship/usecases"
	reviewusecases "revu/internal/application/review/usecases"
	ticketusecases "revu/internal/application/ticket/usecases"
	userusecases "revu/internal/application/user/usecases"
	"revu/internal/infrastructure/auth"
	"revu/internal/infrastructure/config"
	"revu/internal/infrastructure/email"
	"revu/internal/infrastructure/permission"
	"revu/internal/infrastructure/ratelimit"
	"revu/internal/infrastructure/repository"
	"revu/internal/interfaces/http/handlers"
	feedhandlers "revu/internal/interfaces/http/handlers/feed"
	relationshiphandlers "revu/internal/interfaces/http/handlers/relationship"
	reviewhandlers "revu/internal/interfaces/http/handlers/review"
	tickethandlers "revu/internal/interfaces/http/handlers/ticket"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/interfaces/http/routes"
	"revu/internal/shared/db"
	"revu/internal/shared/logger"
	"revu/internal/shared/services/markdown"

	_ "revu/docs"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine               *gin.Engine
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimit            gin.HandlerFunc

	authHandler         *handlers.AuthHandler
	ticketHandler       *tickethandlers.TicketHandler
	reviewHandler       *reviewhandlers.ReviewHandler
	relationshipHandler *relationshiphandlers.RelationshipHandler
	feedHandler         *feedhandlers.FeedHandler
}

// NewRouter builds the full dependency graph. redisClient may be nil
// when Redis is disabled; rate limiting is skipped in that case.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	reviewRequestRepo := repository.NewReviewRequestRepository(gormDB)
	relationshipRepo := repository.NewRelationshipRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(gormDB, log)
	if err != nil {
		return nil, err
	}

	markdownSvc := markdown.NewService()

	var emailSender email.Sender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}

	authHandler := handlers.NewAuthHandler(
		userusecases.NewRegisterUserUseCase(userRepo, hasher, jwtService, enforcer, log),
		userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewRefreshTokenUseCase(jwtService, log),
		userusecases.NewGetProfileUseCase(userRepo, relationshipRepo, log),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, enforcer, log),
		ticketusecases.NewCreateTicketWithReviewUseCase(ticketRepo, reviewRepo, enforcer, txManager, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, enforcer, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, reviewRepo, reviewRequestRepo, enforcer, txManager, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, markdownSvc, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log),
	)

	reviewHandler := reviewhandlers.NewReviewHandler(
		reviewusecases.NewCreateReviewUseCase(reviewRepo, ticketRepo, enforcer, log),
		reviewusecases.NewUpdateReviewUseCase(reviewRepo, enforcer, log),
		reviewusecases.NewDeleteReviewUseCase(reviewRepo, enforcer, log),
		reviewusecases.NewRequestReviewUseCase(reviewRequestRepo, ticketRepo, userRepo, emailSender, log),
		reviewusecases.NewListReviewsUseCase(reviewRepo, userRepo, markdownSvc, log),
	)

	relationshipHandler := relationshiphandlers.NewRelationshipHandler(
		relationshipusecases.NewFollowUserUseCase(relationshipRepo, userRepo, log),
		relationshipusecases.NewUnfollowUserUseCase(relationshipRepo, log),
		relationshipusecases.NewBlockUserUseCase(relationshipRepo, userRepo, log),
		relationshipusecases.NewUnblockUserUseCase(relationshipRepo, log),
		relationshipusecases.NewListRelationshipsUseCase(relationshipRepo, userRepo, log),
	)

	feedHandler := feedhandlers.NewFeedHandler(
		feedusecases.NewGetFeedUseCase(relationshipRepo, ticketRepo, reviewRepo, userRepo, log),
		feedusecases.NewGetDashboardUseCase(ticketRepo, reviewRepo, reviewRequestRepo, log),
	)

	var rateLimitFn gin.HandlerFunc
	if redisClient != nil && cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitFn = middleware.RateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		})
	}

	return &Router{
		engine:               engine,
		authMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		permissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		rateLimit:            rateLimitFn,
		authHandler:          authHandler,
		ticketHandler:        ticketHandler,
		reviewHandler:        reviewHandler,
		relationshipHandler:  relationshipHandler,
		feedHandler:          feedHandler,
	}, nil
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimit:      r.rateLimit,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:        r.reviewHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupRelationshipRoutes(r.engine, &routes.RelationshipRouteConfig{
		RelationshipHandler: r.relationshipHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupFeedRoutes(r.engine, &routes.FeedRouteConfig{
		FeedHandler:    r.feedHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
