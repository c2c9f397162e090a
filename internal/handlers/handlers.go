package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kirvedev/ilan-backend/internal/auth"
	"github.com/kirvedev/ilan-backend/internal/storage"
)

// Package-level dependencies, wired once from main before the router starts.
var (
	Listings   storage.ListingRepository
	Categories *storage.CategoryStore
	Settings   *storage.SettingsStore
	AdminGate  *auth.Gate
)

// Init wires the handler dependencies.
func Init(listings storage.ListingRepository, categories *storage.CategoryStore, settings *storage.SettingsStore, gate *auth.Gate) {
	Listings = listings
	Categories = categories
	Settings = settings
	AdminGate = gate
}

// Response is the {success, message} envelope every write endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Message: message})
}
