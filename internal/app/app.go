package app

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/adapter/handler/http"
	"github.com/sm8ta/bikes4u_marketplace/internal/adapter/logger"
	"github.com/sm8ta/bikes4u_marketplace/internal/adapter/mongodb"
	"github.com/sm8ta/bikes4u_marketplace/internal/adapter/prometheus"
	"github.com/sm8ta/bikes4u_marketplace/internal/adapter/redis"
	"github.com/sm8ta/bikes4u_marketplace/internal/adapter/stripe"
	"github.com/sm8ta/bikes4u_marketplace/internal/config"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/services"

	"github.com/go-playground/validator/v10"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *mongodb.Database
	RedisClient *redisClient.Client
	Cache       ports.CachePort
	HTTPRouter  *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis, optional
	var (
		redisConn *redisClient.Client
		cache     ports.CachePort = redis.NopCache{}
	)
	if cfg.Redis.Address != "" {
		redisConn = redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cache = redis.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("REDIS_ADDRESS not set, category cache disabled", nil)
	}

	// Connect DB
	db, err := mongodb.Connect(ctx, cfg.DB.ConnectionURI(), cfg.DB.Name)
	if err != nil {
		closeRedis(redisConn)
		return nil, err
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	categoryRepo := mongodb.NewCategoryRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	listingRepo := mongodb.NewListingRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// Payment processor
	gateway := stripe.NewPaymentGateway(cfg.Payment.SecretKey, loggerAdapter)

	// Services
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	categoryService := services.NewCategoryService(categoryRepo, loggerAdapter, cache, cfg.Redis.TTL)
	userService := services.NewUserService(userRepo, loggerAdapter, validate)
	authService := services.NewAuthService(userRepo, tokenService, loggerAdapter)
	orderService := services.NewOrderService(orderRepo, loggerAdapter, validate)
	listingService := services.NewListingService(listingRepo, loggerAdapter, validate)
	paymentService := services.NewPaymentService(gateway, paymentRepo, loggerAdapter, validate, cfg.Payment.Currency)

	// HTTP Handlers
	categoryHandler := http.NewCategoryHandler(categoryService, loggerAdapter, metrics)
	userHandler := http.NewUserHandler(userService, authService, loggerAdapter, metrics)
	orderHandler := http.NewOrderHandler(orderService, loggerAdapter, metrics)
	listingHandler := http.NewListingHandler(listingService, loggerAdapter, metrics)
	paymentHandler := http.NewPaymentHandler(paymentService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		loggerAdapter,
		categoryHandler,
		userHandler,
		orderHandler,
		listingHandler,
		paymentHandler,
	)
	if err != nil {
		_ = db.Close(ctx)
		closeRedis(redisConn)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		DB:          db,
		RedisClient: redisConn,
		Cache:       cache,
		HTTPRouter:  router,
	}, nil
}

// Run serves HTTP until Stop is called.
func (a *App) Run() error {
	listenAddr := a.Config.HTTP.Addr()
	a.Logger.Info("Bikes 4U running", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stop drains HTTP and closes the database and cache connections.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if err := a.DB.Close(ctx); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}

func closeRedis(c *redisClient.Client) {
	if c != nil {
		_ = c.Close()
	}
}
