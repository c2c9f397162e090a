package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kirvedev/ilan-backend/internal/models"
)

// ListingRepository is the contract the handlers code against. Implemented by
// the Postgres-backed ListingStore and the legacy file-backed LocalStore.
type ListingRepository interface {
	// ListAll returns every listing newest-first. Failures are swallowed:
	// the public site renders an empty feed rather than an error page.
	ListAll(ctx context.Context) []models.Listing
	// GetByID returns nil when the listing does not exist or the backend
	// is unreachable.
	GetByID(ctx context.Context, id string) *models.Listing
	Create(ctx context.Context, in models.Listing) (*models.Listing, error)
	// Update replaces the mapped fields; id and created_at are preserved
	// even when the payload carries them.
	Update(ctx context.Context, id string, in models.Listing) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
}

// ListingStore is the Postgres-backed listing repository.
type ListingStore struct {
	db *sql.DB
}

func NewListingStore(db *sql.DB) *ListingStore {
	return &ListingStore{db: db}
}

func (s *ListingStore) ListAll(ctx context.Context) []models.Listing {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("error fetching listings: %v", err)
		return []models.Listing{}
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		var r listingRow
		if err := rows.Scan(r.scanFields()...); err != nil {
			log.Printf("error scanning listing: %v", err)
			continue
		}
		listings = append(listings, listingFromRow(r))
	}
	if err := rows.Err(); err != nil {
		log.Printf("error fetching listings: %v", err)
		return []models.Listing{}
	}
	return listings
}

func (s *ListingStore) GetByID(ctx context.Context, id string) *models.Listing {
	var r listingRow
	err := s.db.QueryRowContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1
	`, id).Scan(r.scanFields()...)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("error fetching listing %s: %v", id, err)
		}
		return nil
	}
	listing := listingFromRow(r)
	return &listing
}

func (s *ListingStore) Create(ctx context.Context, in models.Listing) (*models.Listing, error) {
	row := listingToRow(in)
	args := append([]interface{}{uuid.New().String()}, row.writeFields()...)

	var out listingRow
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO listings (id, bayan, aciklama, telefon, resim_url, onaylandi, boy, kilo, kondom, resimler, sehir)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+listingColumns+`
	`, args...).Scan(out.scanFields()...)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	created := listingFromRow(out)
	return &created, nil
}

func (s *ListingStore) Update(ctx context.Context, id string, in models.Listing) (*models.Listing, error) {
	row := listingToRow(in)
	args := append(row.writeFields(), id)

	var out listingRow
	err := s.db.QueryRowContext(ctx, `
		UPDATE listings
		SET bayan = $1, aciklama = $2, telefon = $3, resim_url = $4, onaylandi = $5,
		    boy = $6, kilo = $7, kondom = $8, resimler = $9, sehir = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING `+listingColumns+`
	`, args...).Scan(out.scanFields()...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("listing not found")
		}
		return nil, fmt.Errorf("update listing: %w", err)
	}
	updated := listingFromRow(out)
	return &updated, nil
}

func (s *ListingStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("listing not found")
	}
	return nil
}
