package di

import (
	"context"
	"fmt"

	"hotel-forecast/config"
	"hotel-forecast/dao/redis"
	"hotel-forecast/db"
	"hotel-forecast/loader"
	"hotel-forecast/logger"
	"hotel-forecast/server"
	"hotel-forecast/server/handlers"
	services "hotel-forecast/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

const ENV_PROD = "prod"

var log = logger.New("Container")

// Container holds all application dependencies.
type Container struct {
	Config                *config.Config
	RedisClient           db.RedisClient
	RedisTablesDao        *redis.RedisTablesDAO
	Loader                *loader.Loader
	TablesCacheService    *services.TablesCacheService
	CacheRefresherService *services.CacheRefresherService
	DashboardService      *services.DashboardService
	ForecastHandler       *handlers.ForecastHandler
	PageHandler           *handlers.PageHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	DashboardHttpServer   *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod an
// unreachable Redis falls back to the in-memory cache.
func NewContainer(ctx context.Context, cfg *config.Config, env string) (*Container, error) {
	log.Infof("initializing container - env: %s", env)

	redisClient, err := newRedisClient(ctx, cfg, env)
	if err != nil {
		return nil, err
	}
	redisTablesDao := redis.NewRedisTablesDAO(redisClient)

	// Initialize sources and loader
	dailySource := loader.NewSource(cfg.Data.DailyBookingsSource, cfg.Data.HTTPTimeout)
	forecastSource := loader.NewSource(cfg.Data.ForecastSource, cfg.Data.HTTPTimeout)
	log.Infof("Reading daily bookings from %s and forecast from %s", dailySource.Name(), forecastSource.Name())
	tablesLoader := loader.NewLoader(dailySource, forecastSource)

	// Initialize service layer
	tablesCacheService := services.NewTablesCacheService(tablesLoader, redisTablesDao)
	cacheRefresherService := services.NewCacheRefresherService(tablesCacheService)
	dashboardService := services.NewDashboardService(
		tablesCacheService,
		cfg.Dashboard.HistoryWindow,
		cfg.Dashboard.BucketSize,
	)

	// Initialize handlers
	forecastHandler := handlers.NewForecastHandler(dashboardService, tablesCacheService)
	pageHandler := handlers.NewPageHandler(dashboardService)

	// Initialize mux router
	muxRouter := mux.NewRouter()
	router := server.NewRouter(forecastHandler, pageHandler, muxRouter)

	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.Server.Addr, cfg.Server.ShutdownTimeout)

	return &Container{
		Config:                cfg,
		RedisClient:           redisClient,
		RedisTablesDao:        redisTablesDao,
		Loader:                tablesLoader,
		TablesCacheService:    tablesCacheService,
		CacheRefresherService: cacheRefresherService,
		DashboardService:      dashboardService,
		ForecastHandler:       forecastHandler,
		PageHandler:           pageHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		DashboardHttpServer:   dashboardHttpServer,
	}, nil
}

func newRedisClient(ctx context.Context, cfg *config.Config, env string) (db.RedisClient, error) {
	if cfg.Cache.Backend != config.CACHE_BACKEND_REDIS {
		log.Infof("Using in-memory table cache")
		return db.NewInMemoryRedisClient(), nil
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisClient := db.NewGoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		_ = redisClient.Close()
		if env == ENV_PROD {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Warnf("Redis at %s unreachable (%v), using in-memory table cache", cfg.Redis.Addr, err)
		return db.NewInMemoryRedisClient(), nil
	}
	log.Infof("Using Redis table cache at %s", cfg.Redis.Addr)
	return redisClient, nil
}

// Close releases external connections.
func (c *Container) Close() error {
	if closer, ok := c.RedisClient.(*db.GoRedisClient); ok {
		return closer.Close()
	}
	return nil
}
