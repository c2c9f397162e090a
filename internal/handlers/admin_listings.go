package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirvedev/ilan-backend/internal/models"
	"github.com/kirvedev/ilan-backend/internal/services"
	"github.com/kirvedev/ilan-backend/pkg/utils"
)

// validateListing normalizes the phone number in place and returns a
// user-facing message when the payload must not reach the repository.
// Validation lives here, before any write; the repositories validate nothing.
func validateListing(l *models.Listing) string {
	l.PhoneNumber = utils.NormalizePhone(l.PhoneNumber)

	if l.Title == "" || l.Description == "" || l.PhoneNumber == "" {
		return "Lütfen zorunlu alanları doldurun."
	}
	if len(l.PhoneNumber) < utils.MinPhoneDigits {
		return "Telefon numarası en az 10 haneli olmalıdır."
	}
	return ""
}

// CreateListing handles POST /api/admin/listings.
func CreateListing(w http.ResponseWriter, r *http.Request) {
	var payload models.Listing
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateListing(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := Listings.Create(r.Context(), payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "created", Resource: "listing", ResourceID: created.ID, Detail: created.Title,
	})
	services.PublishListingEvent(r.Context(), services.ListingEvent{
		Type: services.EventListingCreated, ListingID: created.ID, Listing: created,
	})

	respondJSON(w, http.StatusCreated, Response{Success: true, Data: created})
}

// UpdateListing handles PUT /api/admin/listings/{id}. The stored identifier
// and creation time always survive, whatever the payload carries.
func UpdateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload models.Listing
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateListing(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := Listings.Update(r.Context(), id, payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "updated", Resource: "listing", ResourceID: updated.ID, Detail: updated.Title,
	})
	services.PublishListingEvent(r.Context(), services.ListingEvent{
		Type: services.EventListingUpdated, ListingID: updated.ID, Listing: updated,
	})

	respondJSON(w, http.StatusOK, Response{Success: true, Data: updated})
}

// ApproveListing handles PUT /api/admin/listings/{id}/approve.
func ApproveListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing := Listings.GetByID(r.Context(), id)
	if existing == nil {
		respondError(w, http.StatusNotFound, "İlan bulunamadı")
		return
	}

	existing.AdminApproved = true
	updated, err := Listings.Update(r.Context(), id, *existing)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "approved", Resource: "listing", ResourceID: updated.ID, Detail: updated.Title,
	})
	services.PublishListingEvent(r.Context(), services.ListingEvent{
		Type: services.EventListingUpdated, ListingID: updated.ID, Listing: updated,
	})

	respondJSON(w, http.StatusOK, Response{Success: true, Data: updated})
}

// DeleteListing handles DELETE /api/admin/listings/{id}. Hard delete.
func DeleteListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := Listings.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordAuditAsync(services.AuditEntry{
		Action: "deleted", Resource: "listing", ResourceID: id,
	})
	services.PublishListingEvent(r.Context(), services.ListingEvent{
		Type: services.EventListingDeleted, ListingID: id,
	})

	respondJSON(w, http.StatusOK, Response{Success: true})
}
