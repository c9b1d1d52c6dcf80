package app

import (
	"context"
	"log"
	"os"
	"time"

	"farmconnect/internal/config"
	"farmconnect/internal/database"
	dbpostgres "farmconnect/internal/database/postgres"
	"farmconnect/internal/delivery/http/handler"
	"farmconnect/internal/delivery/http/middleware"
	"farmconnect/internal/delivery/http/routes"
	"farmconnect/internal/domain/geo"
	"farmconnect/internal/domain/matching"
	"farmconnect/internal/infrastructure/cache"
	"farmconnect/internal/pipeline"
	"farmconnect/internal/pkg/jwt"
	"farmconnect/internal/repository"
	"farmconnect/internal/usecase"
	"farmconnect/internal/ws"
)

type Container struct {
	Config     config.Config
	Logger     *log.Logger
	DB         database.DB
	Cache      *cache.Redis
	Hub        *ws.Hub
	Dispatcher *pipeline.MatchDispatcher
	Routes     *routes.Registry
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	availabilityRepo := repository.NewPostgresWorkerAvailabilityRepository(db)
	reputationRepo := repository.NewPostgresReputationRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)
	equipmentRepo := repository.NewPostgresEquipmentRepository(db)
	adRepo := repository.NewPostgresAdRepository(db)

	ranker := matching.NewRanker(geo.DefaultPolicy(), reputationRepo, logger)
	matchingUC := usecase.NewMatchingUsecase(availabilityRepo, matchRepo, ranker, notifier, redisCache, logger)

	dispatcher := pipeline.NewMatchDispatcher(
		matchingUC,
		cfg.Matching.Workers,
		cfg.Matching.QueueSize,
		cfg.Matching.RunTimeout,
		logger,
	)
	dispatcher.Start()

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, dispatcher)
	availabilityUC := usecase.NewAvailabilityUsecase(availabilityRepo)
	lifecycleUC := usecase.NewMatchLifecycleUsecase(matchRepo, redisCache, logger)
	equipmentUC := usecase.NewEquipmentUsecase(equipmentRepo)
	adsUC := usecase.NewAdsUsecase(adRepo, userRepo)

	registry := routes.NewRegistry(
		handler.NewAuthHandler(authUC),
		handler.NewLabourHandler(jobUC, availabilityUC),
		handler.NewMatchHandler(lifecycleUC),
		handler.NewEquipmentHandler(equipmentUC),
		handler.NewAdsHandler(adsUC),
		handler.NewHealthHandler(db, redisCache),
		ws.NewHandler(hub, logger),
		authMw.Middleware(),
	)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Cache:      redisCache,
		Hub:        hub,
		Dispatcher: dispatcher,
		Routes:     registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Dispatcher != nil {
		c.Dispatcher.Stop()
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && c.Logger != nil {
			c.Logger.Printf("redis close error | error=%v", err)
		}
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
