package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/kirvedev/ilan-backend/internal/auth"
	"github.com/kirvedev/ilan-backend/internal/handlers"
	"github.com/kirvedev/ilan-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux, gate *auth.Gate) {
	// Public site
	r.Get("/api/listings", handlers.GetFeed)
	r.Get("/api/listings/{id}", handlers.GetListingByID)
	r.Get("/api/categories", handlers.GetCategories)
	r.Get("/api/settings", handlers.GetSettings)

	// Admin auth
	r.Post("/api/admin/login", handlers.AdminLogin)
	r.Get("/api/admin/session", handlers.AdminSession)

	// Admin area (session required)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(gate))

		r.Post("/api/admin/logout", handlers.AdminLogout)

		r.Post("/api/admin/listings", handlers.CreateListing)
		r.Put("/api/admin/listings/{id}", handlers.UpdateListing)
		r.Put("/api/admin/listings/{id}/approve", handlers.ApproveListing)
		r.Delete("/api/admin/listings/{id}", handlers.DeleteListing)

		r.Post("/api/admin/categories", handlers.CreateCategory)
		r.Put("/api/admin/categories/{id}", handlers.UpdateCategory)
		r.Delete("/api/admin/categories/{id}", handlers.DeleteCategory)

		r.Put("/api/admin/settings", handlers.UpdateSettings)
		r.Post("/api/admin/upload", handlers.UploadFile)
		r.Get("/api/admin/activity", handlers.GetAdminActivity)
	})

	// WebSocket live feed for the admin dashboard (token via query parameter)
	r.Get("/ws/admin", handlers.AdminFeedWS)
}
