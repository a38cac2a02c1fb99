package routes

import (
	_ "concert_tickets/docs" // This will be auto-generated
	"concert_tickets/internal/adapter/http/handlers"
	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/infrastructure/config"
	"concert_tickets/internal/infrastructure/payments"
	"concert_tickets/internal/infrastructure/tokencache"
	"concert_tickets/internal/usecase"
	"concert_tickets/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run builds the router from cfg and serves until SIGINT or SIGTERM.
func Run(cfg config.Config) {
	orderHandler, err := NewOrderHandler(context.Background(), cfg, nil)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
	router := NewRouter(cfg, orderHandler)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("[server] listening port=%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[server] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[server] forced to shutdown: %v", err)
	}
	log.Println("[server] exited")
}

// NewRouter wires middlewares, docs, health and order routes onto a fresh engine.
func NewRouter(cfg config.Config, orderHandler *handlers.OrderHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg.AllowedOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addHealthRoutes(router, cfg.HealthMessage)

	api := router.Group(PathAPI)
	addOrderRoutes(api, orderHandler)

	return router
}

// NewOrderHandler assembles token provider, optional token cache, PayPal
// gateway and order use case. A nil httpClient gets one using
// cfg.PayPal.HTTPTimeout.
func NewOrderHandler(ctx context.Context, cfg config.Config, httpClient *http.Client) (*handlers.OrderHandler, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.PayPal.HTTPTimeout}
	}

	if cfg.PayPal.ClientID == "" || cfg.PayPal.ClientSecret == "" {
		log.Printf("[payment] PayPal credentials not configured, order requests will fail")
	}

	var tokens interfaces.ITokenProvider = payments.NewPayPalTokenProvider(cfg.PayPal, httpClient)

	cache, err := tokencache.NewFromConfig(ctx, cfg.TokenCache)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		tokens = payments.NewCachingTokenProvider(tokens, cache, tokencache.Key(cfg.PayPal.BaseURL, cfg.PayPal.ClientID))
	}

	gateway := payments.NewPayPalGateway(cfg.PayPal, tokens, httpClient)
	orderUseCase := usecase.NewOrderUseCase(gateway, entities.DefaultPricing, cfg.OrderDescription)

	return handlers.NewOrderHandler(orderUseCase), nil
}
