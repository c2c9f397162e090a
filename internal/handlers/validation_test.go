package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirvedev/ilan-backend/internal/models"
)

func TestValidateListingRequiredFields(t *testing.T) {
	cases := []models.Listing{
		{Description: "d", PhoneNumber: "905551234567"},       // no title
		{Title: "t", PhoneNumber: "905551234567"},             // no description
		{Title: "t", Description: "d"},                        // no phone
		{Title: "t", Description: "d", PhoneNumber: "()- .."}, // phone all stripped
	}
	for i := range cases {
		msg := validateListing(&cases[i])
		assert.Equal(t, "Lütfen zorunlu alanları doldurun.", msg, "case %d", i)
	}
}

func TestValidateListingPhoneTooShort(t *testing.T) {
	l := models.Listing{Title: "t", Description: "d", PhoneNumber: "555 123 45"}
	msg := validateListing(&l)
	assert.Equal(t, "Telefon numarası en az 10 haneli olmalıdır.", msg)
}

func TestValidateListingNormalizesPhone(t *testing.T) {
	l := models.Listing{Title: "t", Description: "d", PhoneNumber: "+90 (555) 123-45-67"}
	msg := validateListing(&l)
	assert.Empty(t, msg)
	assert.Equal(t, "905551234567", l.PhoneNumber)
}

func TestValidateListingValid(t *testing.T) {
	l := models.Listing{Title: "t", Description: "d", PhoneNumber: "905551234567"}
	assert.Empty(t, validateListing(&l))
}
