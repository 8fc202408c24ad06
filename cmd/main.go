package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"vidstream/api/handler"
	apiMiddleware "vidstream/api/middleware"
	"vidstream/api/routes"
	"vidstream/config"
	"vidstream/internal/entity"
	"vidstream/internal/repository"
	"vidstream/internal/service"
	"vidstream/internal/storage"
	"vidstream/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Video{},
		&entity.Playlist{},
		&entity.Follow{},
		&entity.Like{},
		&entity.Comment{},
		&entity.CommunityPost{},
		&entity.WatchHistoryEntry{},
		&entity.AuditLog{},
	); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	media, err := storage.NewMinioStorage(cfg.Minio)
	if err != nil {
		logger.WithError(err).Fatal("object storage init failed")
	}
	bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := media.EnsureBucket(bucketCtx); err != nil {
		cancel()
		logger.WithError(err).Fatal("bucket check failed")
	}
	cancel()

	emailSender, err := service.NewResendEmailSender(cfg.ResendAPIKey, cfg.MailFrom)
	if err != nil {
		logger.WithError(err).Fatal("mail sender init failed")
	}

	tokenManager := &utils.TokenManager{
		AccessSecret:    []byte(cfg.AccessTokenSecret),
		RefreshSecret:   []byte(cfg.RefreshTokenSecret),
		Issuer:          cfg.JWTIssuer,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	}
	tokenIssuer := service.JWTTokenIssuer{Manager: tokenManager}
	passwordHasher := service.BcryptPasswordHasher{}
	clock := service.RealClock{}
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	postRepo := repository.NewCommunityPostRepository(db)
	watchHistoryRepo := repository.NewWatchHistoryRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	authService := service.NewAuthService(
		userRepo,
		auditLogRepo,
		emailSender,
		passwordHasher,
		tokenIssuer,
		clock,
		service.AuthConfig{
			VerificationCodeTTL: cfg.VerificationCodeTTL,
			ResetCodeTTL:        cfg.ResetCodeTTL,
		},
	)
	userService := service.NewUserService(userRepo, followRepo, watchHistoryRepo, media, clock)
	videoService := service.NewVideoService(videoRepo, likeRepo, watchHistoryRepo, media, clock)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo)
	engagementService := service.NewEngagementService(followRepo, likeRepo, commentRepo, videoRepo, postRepo, userRepo)
	communityService := service.NewCommunityService(postRepo)
	dashboardService := service.NewDashboardService(videoRepo, followRepo, likeRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = cfg.CookieDomain
	authHandler.SecureCookies = cfg.SecureCookies

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{
		JWT:              tokenManager,
		AccessCookieName: authHandler.AccessCookieName,
	}
	router := routes.NewRouter(
		app,
		authHandler,
		handler.NewUserHandler(userService, validate),
		handler.NewVideoHandler(videoService, validate),
		handler.NewPlaylistHandler(playlistService, validate),
		handler.NewEngagementHandler(engagementService, validate),
		handler.NewCommunityHandler(communityService, validate),
		handler.NewDashboardHandler(dashboardService),
		handler.NewHealthHandler(db),
		authMiddleware,
	)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
