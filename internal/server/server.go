package server

import (
	"net/http"

	"cardlink-backend/internal/config"
	"cardlink-backend/internal/handler"
	"cardlink-backend/internal/otp"
	"cardlink-backend/internal/rate"
	"cardlink-backend/internal/repository"
	"cardlink-backend/internal/router"
	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/cache"
	"cardlink-backend/pkg/id"
	"cardlink-backend/pkg/jwtutil"
	"cardlink-backend/pkg/kafka"
	"cardlink-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// New wires repositories, usecases, and handlers into an http.Server.
func New(cfg config.AppConfig, logger *zap.Logger) (*http.Server, func(), error) {
	db, err := config.ConnectDB(logger)
	if err != nil {
		return nil, nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	kv := cache.NewCache([]string{cfg.RedisAddr}, cfg.RedisPass, false)

	sf, err := id.NewSnowflake(cfg.SnowflakeNode)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	signer := jwtutil.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	auth := middleware.NewAuth(signer)

	var events usecase.EventPublisher
	var producer *kafka.EventProducer
	if cfg.KafkaEnabled {
		producer, err = kafka.NewEventProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Warn("kafka producer unavailable, events disabled", zap.Error(err))
		} else {
			events = producer
		}
	}

	userRepo := repository.NewUserRepository(db)
	viewRepo := repository.NewProfileViewRepository(db)
	contactRepo := repository.NewSavedContactRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	socialRepo := repository.NewSocialRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	inboxRepo := repository.NewInboxRepository(db)

	staging := otp.NewStagingStore(kv)
	limiter := rate.NewLimiter(kv, cfg.OTPWindow, cfg.OTPMaxPerWindow, cfg.OTPCooldown)

	authUC := usecase.NewAuthUsecase(userRepo, staging, limiter, sf, signer, events, logger)
	profileUC := usecase.NewProfileUsecase(userRepo, categoryRepo, viewRepo, logger)
	contactUC := usecase.NewContactUsecase(userRepo, contactRepo, viewRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	serviceUC := usecase.NewServiceUsecase(serviceRepo)
	socialUC := usecase.NewSocialUsecase(socialRepo)
	themeUC := usecase.NewThemeUsecase(themeRepo)
	inboxUC := usecase.NewInboxUsecase(inboxRepo, userRepo, events, logger)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		Profile:  handler.NewProfileHandler(profileUC),
		Contact:  handler.NewContactHandler(contactUC),
		Category: handler.NewCategoryHandler(categoryUC),
		Service:  handler.NewServiceHandler(serviceUC),
		Social:   handler.NewSocialHandler(socialUC),
		Theme:    handler.NewThemeHandler(themeUC),
		Inbox:    handler.NewInboxHandler(inboxUC),
	}

	r := chi.NewRouter()
	router.SetupRoutes(r, h, auth, rdb)

	cleanup := func() {
		if producer != nil {
			_ = producer.Close()
		}
		_ = kv.Close()
		_ = rdb.Close()
		db.Close()
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}, cleanup, nil
}
