package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/kirvedev/ilan-backend/internal/auth"
	"github.com/kirvedev/ilan-backend/internal/config"
	"github.com/kirvedev/ilan-backend/internal/database"
	"github.com/kirvedev/ilan-backend/internal/handlers"
	"github.com/kirvedev/ilan-backend/internal/middleware"
	"github.com/kirvedev/ilan-backend/internal/routes"
	"github.com/kirvedev/ilan-backend/internal/services"
	"github.com/kirvedev/ilan-backend/internal/storage"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to Redis (settings cache, sessions, rate limiting, live feed)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to PostgreSQL; when it is unreachable, fall back to the
	// legacy file-backed listing store so the site keeps serving.
	var listings storage.ListingRepository
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Printf("⚠️  WARNING: PostgreSQL unavailable (%v); using legacy file store", err)
		local, lerr := storage.NewLocalStore(cfg.DataDir)
		if lerr != nil {
			log.Fatal("Failed to initialize legacy file store:", lerr)
		}
		listings = local
	} else {
		defer database.DisconnectPostgres()
		listings = storage.NewListingStore(database.PostgresDB)
	}

	// Connect to MongoDB (admin activity log). Non-fatal: an outage only
	// loses audit entries.
	log.Printf("Connecting to MongoDB...")
	if err := database.ConnectMongo(cfg.MongoURI); err != nil {
		log.Printf("⚠️  WARNING: MongoDB unavailable (%v); admin activity log disabled", err)
	} else {
		defer database.DisconnectMongo()
		if err := services.EnsureAuditIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure activity log indexes: %v", err)
		}
	}

	// Initialize Cloudinary service
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Photo uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Photo uploads will not be available")
	}

	// Wire stores and the auth gate
	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, services.NewRedisSessionStore())
	handlers.Init(
		listings,
		storage.NewCategoryStore(database.PostgresDB),
		storage.NewSettingsStore(storage.NewPGSettingsBackend(database.PostgresDB), services.NewRedisLinkCache()),
		gate,
	)

	// Start the Redis subscriber feeding the admin dashboard WebSocket
	services.StartListingFeedSubscriber(context.Background())

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: SecurityHeaders → HostCheck → GlobalRateLimit → LoginRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, gate)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  GET  /api/listings")
	log.Println("  GET  /api/listings/{id}")
	log.Println("  GET  /api/categories")
	log.Println("  GET  /api/settings")
	log.Println("  POST /api/admin/login")
	log.Println("  GET  /api/admin/session")
	log.Println("  POST /api/admin/logout")
	log.Println("  POST /api/admin/listings")
	log.Println("  PUT  /api/admin/listings/{id}")
	log.Println("  PUT  /api/admin/listings/{id}/approve")
	log.Println("  DELETE /api/admin/listings/{id}")
	log.Println("  POST /api/admin/categories")
	log.Println("  PUT  /api/admin/categories/{id}")
	log.Println("  DELETE /api/admin/categories/{id}")
	log.Println("  PUT  /api/admin/settings")
	log.Println("  POST /api/admin/upload")
	log.Println("  GET  /api/admin/activity")
	log.Println("  GET  /ws/admin")

	log.Printf("🚀 ilan backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
