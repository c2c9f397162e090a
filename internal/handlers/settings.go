package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kirvedev/ilan-backend/internal/services"
)

// GetSettings handles GET /api/settings: the resolved contact link, always
// available thanks to the backend → cache → default chain.
func GetSettings(w http.ResponseWriter, r *http.Request) {
	settings := Settings.Get(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"telegram_link": settings.TelegramLink,
		"raw_username":  settings.RawUsername,
	})
}

// UpdateSettingsRequest carries the new contact link from the admin form.
type UpdateSettingsRequest struct {
	TelegramLink string `json:"telegram_link"`
}

// UpdateSettings handles PUT /api/admin/settings. The save never fails from
// the admin's point of view: cache first, backend best-effort, note attached
// when the backend was unreachable.
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link := strings.TrimSpace(req.TelegramLink)
	if link == "" {
		respondError(w, http.StatusBadRequest, "Telegram linki boş olamaz.")
		return
	}

	result := Settings.Update(r.Context(), link)

	services.RecordAuditAsync(services.AuditEntry{
		Action: "settings_updated", Resource: "settings", Detail: link,
	})

	respondJSON(w, http.StatusOK, result)
}
