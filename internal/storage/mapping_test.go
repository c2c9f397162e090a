package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kirvedev/ilan-backend/internal/models"
)

func TestListingMappingRoundTrip(t *testing.T) {
	in := models.Listing{
		Title:         "Test Profili",
		Description:   "Açıklama metni",
		PhoneNumber:   "905551234567",
		CoverPhotoURL: "https://example.com/cover.jpg",
		Photos:        []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
		Height:        "170 cm",
		Weight:        "55 kg",
		Condom:        true,
		AdminApproved: true,
		City:          "Ankara",
	}

	row := listingToRow(in)
	row.ID = "some-id"
	row.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := listingFromRow(row)

	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Description, out.Description)
	assert.Equal(t, in.PhoneNumber, out.PhoneNumber)
	assert.Equal(t, in.CoverPhotoURL, out.CoverPhotoURL)
	assert.Equal(t, in.Photos, out.Photos)
	assert.Equal(t, in.Height, out.Height)
	assert.Equal(t, in.Weight, out.Weight)
	assert.Equal(t, in.Condom, out.Condom)
	assert.Equal(t, in.AdminApproved, out.AdminApproved)
	assert.Equal(t, in.City, out.City)
}

func TestListingMappingCityDefault(t *testing.T) {
	row := listingToRow(models.Listing{Title: "x", Description: "y", PhoneNumber: "1234567890"})
	assert.True(t, row.Sehir.Valid)
	assert.Equal(t, defaultCity, row.Sehir.String)
}

func TestListingMappingNilPhotos(t *testing.T) {
	row := listingToRow(models.Listing{Title: "x"})
	out := listingFromRow(row)
	assert.NotNil(t, out.Photos)
	assert.Empty(t, out.Photos)
}
