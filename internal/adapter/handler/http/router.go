package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/sm8ta/bikes4u_marketplace/internal/config"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sm8ta/bikes4u_marketplace/docs"
)

const banner = "Hello From Bikes 4U"

type Router struct {
	router *gin.Engine

	mu     sync.Mutex
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	categoryHandler *CategoryHandler,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	listingHandler *ListingHandler,
	paymentHandler *PaymentHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	// CORS
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, banner)
	})

	auth := AuthMiddleware(tokenService, logger)
	self := Guarded(logger, Authenticate(tokenService), SelfQuery("email"))

	router.GET("/categories", categoryHandler.ListCategories)
	router.GET("/categories/:id", categoryHandler.GetCategory)

	router.POST("/bikeorders", orderHandler.CreateOrder)
	router.GET("/bikeorders/:id", orderHandler.GetOrder)
	router.GET("/bikeorders", self, orderHandler.GetMyOrders)

	router.POST("/create-payment-intent", auth, paymentHandler.CreatePaymentIntent)
	router.POST("/payments", auth, paymentHandler.RecordPayment)

	router.GET("/jwt", userHandler.IssueToken)
	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.DELETE("/:id", auth, userHandler.DeleteUser)
		users.GET("/admin/:email", userHandler.IsAdmin)
		users.GET("/buyer/:email", userHandler.IsBuyer)
		users.GET("/seller/:email", userHandler.IsSeller)
	}

	// Public listing feed; the seller view below requires a token.
	router.GET("/addedbikesss", listingHandler.ListListings)
	listings := router.Group("/addedbikes")
	listings.Use(auth)
	{
		listings.POST("", listingHandler.CreateListing)
		listings.GET("", listingHandler.GetSellerListings)
		listings.DELETE("/:id", listingHandler.DeleteListing)
		listings.PUT("/:id", listingHandler.AdvertiseListing)
	}

	return &Router{router: router}, nil
}

func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
	}

	var origins []string
	for _, origin := range strings.Split(allowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" && origin != "*" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// Serve blocks until the server stops. A stop through Shutdown is not an error.
func (r *Router) Serve(addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: r.router,
	}
	r.mu.Lock()
	r.server = server
	r.mu.Unlock()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	server := r.server
	r.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
