package handlers

import (
	"net/http"
	"strconv"

	"github.com/kirvedev/ilan-backend/internal/services"
)

// GetAdminActivity handles GET /api/admin/activity: the recent audit trail
// of admin actions, newest first.
func GetAdminActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	entries, err := services.RecentAuditEntries(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load activity")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entries})
}
