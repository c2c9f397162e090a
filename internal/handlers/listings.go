package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirvedev/ilan-backend/internal/models"
)

// FeedResponse is the home feed: approved listings in their own section,
// everything else below. The two groups are disjoint and together cover the
// full set.
type FeedResponse struct {
	Success  bool             `json:"success"`
	Approved []models.Listing `json:"approved"`
	Listings []models.Listing `json:"listings"`
}

// GetFeed returns every listing newest-first, partitioned by approval.
// Backend failures degrade to an empty feed.
func GetFeed(w http.ResponseWriter, r *http.Request) {
	all := Listings.ListAll(r.Context())
	approved, others := partitionListings(all)
	respondJSON(w, http.StatusOK, FeedResponse{
		Success:  true,
		Approved: approved,
		Listings: others,
	})
}

// partitionListings splits by admin_approved, preserving order.
func partitionListings(all []models.Listing) (approved, others []models.Listing) {
	approved = []models.Listing{}
	others = []models.Listing{}
	for _, l := range all {
		if l.AdminApproved {
			approved = append(approved, l)
		} else {
			others = append(others, l)
		}
	}
	return approved, others
}

// GetListingByID returns a single listing or 404.
func GetListingByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	listing := Listings.GetByID(r.Context(), id)
	if listing == nil {
		respondError(w, http.StatusNotFound, "İlan bulunamadı")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: listing})
}
