package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shankarpradhan/Megashopping/cache"
	"github.com/shankarpradhan/Megashopping/config"
	orderControllers "github.com/shankarpradhan/Megashopping/controllers/order"
	"github.com/shankarpradhan/Megashopping/controllers/payment"
	"github.com/shankarpradhan/Megashopping/models"
	"github.com/shankarpradhan/Megashopping/routes"
	"github.com/shankarpradhan/Megashopping/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	logger.Info("✅ Starting application...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("❌ Config load failed", zap.Error(err))
	}

	// Init DB
	db := initDatabase(cfg, logger)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("❌ AutoMigrate failed", zap.Error(err))
	}

	// Tracing (no-op unless OTEL_EXPORTER_OTLP_ENDPOINT is set)
	shutdownTracer, err := telemetry.InitTracerProvider(context.Background(), "megashopping-api")
	if err != nil {
		logger.Fatal("❌ Tracer init failed", zap.Error(err))
	}
	if shutdownTracer != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	paymentMetrics := telemetry.NewPaymentMetrics(registry)

	// Cart cache (optional)
	var cartCache cache.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		cartCache = cache.NewRedisCache(client)
		logger.Info("✅ Redis cart cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	// Payment workflow
	gateway := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayAPIURL)
	workflow := payment.NewWorkflow(
		payment.NewGormOrderStore(db),
		payment.NewGormCartStore(db, cartCache),
		gateway,
		cfg.RazorpayKeySecret,
		logger,
		paymentMetrics,
	)
	workflow.OnOrderCommitted(orderControllers.BroadcastNewOrder)

	// Gin setup
	r := gin.Default()
	r.Use(otelgin.Middleware("megashopping-api"))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Setup routes
	routes.SetupRoutes(r, db, cfg, cartCache, workflow)

	// Start server
	logger.Info("🚀 Server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stdout"}
	zcfg.ErrorOutputPaths = []string{"stdout"}

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// initDatabase sets up the GORM DB connection. TranslateError is required so
// unique-index violations surface as gorm.ErrDuplicatedKey, which the order
// store relies on for idempotency.
func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("❌ DB connection failed", zap.Error(err))
	}
	return db
}
