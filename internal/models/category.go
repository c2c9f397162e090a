package models

import "time"

// Category is a loosely-typed grouping record. No field translation: column
// names match the JSON names one-to-one.
type Category struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
}
