package models

import "time"

// Listing is the application-facing shape of one profile record.
// Storage column names differ (Turkish schema); the translation lives in
// internal/storage/mapping.go and nowhere else.
type Listing struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `json:"title"`
	Description string `json:"description"`
	PhoneNumber string `json:"phone_number"`

	CoverPhotoURL string   `json:"cover_photo_url"`
	Photos        []string `json:"photos"`

	Height string `json:"height"`
	Weight string `json:"weight"`
	Condom bool   `json:"condom"`

	AdminApproved bool `json:"admin_approved"`

	// Carried through but not edited by the admin form.
	City     string `json:"city,omitempty"`
	Age      int    `json:"age,omitempty"`
	Services string `json:"services,omitempty"`
	Price    string `json:"price,omitempty"`
}
