package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirvedev/ilan-backend/internal/models"
	"github.com/kirvedev/ilan-backend/internal/services"
)

// GetCategories handles GET /api/categories.
func GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := Categories.ListAll(r.Context())
	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// CreateCategory handles POST /api/admin/categories.
func CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload models.Category
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" {
		respondError(w, http.StatusBadRequest, "Kategori adı boş olamaz.")
		return
	}

	created, err := Categories.Create(r.Context(), payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "created", Resource: "category", ResourceID: created.ID, Detail: created.Name,
	})

	respondJSON(w, http.StatusCreated, Response{Success: true, Data: created})
}

// UpdateCategory handles PUT /api/admin/categories/{id}.
func UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload models.Category
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := Categories.Update(r.Context(), id, payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "updated", Resource: "category", ResourceID: updated.ID, Detail: updated.Name,
	})

	respondJSON(w, http.StatusOK, Response{Success: true, Data: updated})
}

// DeleteCategory handles DELETE /api/admin/categories/{id}.
func DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := Categories.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "deleted", Resource: "category", ResourceID: id,
	})

	respondJSON(w, http.StatusOK, Response{Success: true})
}
