package storage

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/kirvedev/ilan-backend/internal/models"
)

// The hosted backend this service replaced kept its listing columns in
// Turkish while the application speaks English. This file is the only place
// that translation exists; read and write must stay exact inverses of each
// other on every round-tripped field.
//
//	bayan      <-> title
//	aciklama   <-> description
//	telefon    <-> phone_number
//	resim_url  <-> cover_photo_url
//	onaylandi  <-> admin_approved
//	boy        <-> height
//	kilo       <-> weight
//	kondom     <-> condom
//	resimler   <-> photos
//	sehir      <-> city (defaults to defaultCity on write when empty)
//	yas        <-> age        (read-only; not written by the admin form)
//	hizmetler  <-> services   (read-only)
//	fiyat      <-> price      (read-only)

const defaultCity = "Elazığ"

// listingColumns is the read set, in scan order of listingRow.
const listingColumns = `id, created_at, bayan, aciklama, telefon, resim_url, onaylandi, boy, kilo, kondom, resimler, sehir, yas, hizmetler, fiyat`

// listingRow mirrors the storage schema one field per column.
type listingRow struct {
	ID        string
	CreatedAt time.Time
	Bayan     string
	Aciklama  string
	Telefon   string
	ResimURL  sql.NullString
	Onaylandi bool
	Boy       sql.NullString
	Kilo      sql.NullString
	Kondom    bool
	Resimler  pq.StringArray
	Sehir     sql.NullString
	Yas       sql.NullInt64
	Hizmetler sql.NullString
	Fiyat     sql.NullString
}

func (r *listingRow) scanFields() []interface{} {
	return []interface{}{
		&r.ID, &r.CreatedAt, &r.Bayan, &r.Aciklama, &r.Telefon, &r.ResimURL,
		&r.Onaylandi, &r.Boy, &r.Kilo, &r.Kondom, &r.Resimler, &r.Sehir,
		&r.Yas, &r.Hizmetler, &r.Fiyat,
	}
}

// listingFromRow maps storage shape to application shape.
func listingFromRow(r listingRow) models.Listing {
	photos := []string(r.Resimler)
	if photos == nil {
		photos = []string{}
	}
	return models.Listing{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		Title:         r.Bayan,
		Description:   r.Aciklama,
		PhoneNumber:   r.Telefon,
		CoverPhotoURL: r.ResimURL.String,
		AdminApproved: r.Onaylandi,
		Height:        r.Boy.String,
		Weight:        r.Kilo.String,
		Condom:        r.Kondom,
		Photos:        photos,
		City:          r.Sehir.String,
		Age:           int(r.Yas.Int64),
		Services:      r.Hizmetler.String,
		Price:         r.Fiyat.String,
	}
}

// listingToRow maps application shape to storage shape for writes. The write
// set deliberately excludes id, created_at and the read-only extras; city
// falls back to the fixed default when the caller left it empty.
func listingToRow(l models.Listing) listingRow {
	city := l.City
	if city == "" {
		city = defaultCity
	}
	return listingRow{
		Bayan:     l.Title,
		Aciklama:  l.Description,
		Telefon:   l.PhoneNumber,
		ResimURL:  nullString(l.CoverPhotoURL),
		Onaylandi: l.AdminApproved,
		Boy:       nullString(l.Height),
		Kilo:      nullString(l.Weight),
		Kondom:    l.Condom,
		Resimler:  pq.StringArray(l.Photos),
		Sehir:     nullString(city),
	}
}

// writeFields returns the write-set values in the fixed column order
// (bayan, aciklama, telefon, resim_url, onaylandi, boy, kilo, kondom,
// resimler, sehir).
func (r listingRow) writeFields() []interface{} {
	resimler := r.Resimler
	if resimler == nil {
		resimler = pq.StringArray{}
	}
	return []interface{}{
		r.Bayan, r.Aciklama, r.Telefon, r.ResimURL, r.Onaylandi,
		r.Boy, r.Kilo, r.Kondom, resimler, r.Sehir,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
