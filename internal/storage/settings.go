package storage

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/kirvedev/ilan-backend/internal/models"
)

const (
	// DefaultTelegramLink is the last-resort contact link when both the
	// backend and the cache are empty or unreachable.
	DefaultTelegramLink   = "https://t.me/elazigescort_admin"
	defaultTelegramHandle = "elazigescort_admin"
)

// SettingsBackend is the single settings row in the remote backend.
type SettingsBackend interface {
	// Fetch returns the stored handle (or full URL) and whether a row exists.
	Fetch(ctx context.Context) (handle string, found bool, err error)
	// Save updates the existing row or inserts one when none exists.
	Save(ctx context.Context, handle string) error
}

// LinkCache mirrors the last known-good resolved link locally.
type LinkCache interface {
	GetLink(ctx context.Context) (string, bool)
	SetLink(ctx context.Context, link string) error
}

// SettingsStore resolves the contact link with a fixed three-tier order:
// backend, then cache, then hardcoded default. The cache is a write-through
// mirror of the last value the backend served, never an independent source
// of truth while the backend is reachable.
type SettingsStore struct {
	backend SettingsBackend
	cache   LinkCache
}

func NewSettingsStore(backend SettingsBackend, cache LinkCache) *SettingsStore {
	return &SettingsStore{backend: backend, cache: cache}
}

func (s *SettingsStore) Get(ctx context.Context) models.Settings {
	// 1. Remote backend.
	handle, found, err := s.backend.Fetch(ctx)
	if err == nil && found {
		if handle == "" {
			handle = defaultTelegramHandle
		}
		link := ResolveTelegramLink(handle)
		if cacheErr := s.cache.SetLink(ctx, link); cacheErr != nil {
			log.Printf("settings: failed to cache link: %v", cacheErr)
		}
		return models.Settings{TelegramLink: link, RawUsername: handle}
	}
	if err != nil {
		log.Printf("settings: backend fetch failed, using fallback: %v", err)
	}

	// 2. Local cache of the last known-good value.
	if link, ok := s.cache.GetLink(ctx); ok {
		return models.Settings{TelegramLink: link, RawUsername: link}
	}

	// 3. Hardcoded default.
	return models.Settings{TelegramLink: DefaultTelegramLink, RawUsername: defaultTelegramHandle}
}

// Update saves the link to the cache first so the admin-facing save succeeds
// even under total backend failure, then tries the backend. It never reports
// failure; the note says where the value actually landed.
func (s *SettingsStore) Update(ctx context.Context, link string) models.SettingsUpdateResult {
	if err := s.cache.SetLink(ctx, link); err != nil {
		log.Printf("settings: failed to cache link: %v", err)
	}

	handle := ExtractTelegramHandle(link)
	if err := s.backend.Save(ctx, handle); err != nil {
		log.Printf("settings: backend save failed, saved locally only: %v", err)
		return models.SettingsUpdateResult{Success: true, Note: "Saved locally only (DB error)"}
	}
	return models.SettingsUpdateResult{Success: true}
}

// ResolveTelegramLink expands a stored handle into a full link. Values that
// already look like URLs pass through untouched; a leading @ is stripped.
func ResolveTelegramLink(handle string) string {
	if handle == "" {
		handle = defaultTelegramHandle
	}
	if strings.HasPrefix(handle, "http") {
		return handle
	}
	return "https://t.me/" + strings.TrimPrefix(handle, "@")
}

// ExtractTelegramHandle derives the bare handle when the link embeds the
// t.me pattern; anything else is stored as-is.
func ExtractTelegramHandle(link string) string {
	if idx := strings.Index(link, "t.me/"); idx != -1 {
		return strings.ReplaceAll(link[idx+len("t.me/"):], "/", "")
	}
	return link
}

// PGSettingsBackend keeps the single settings row in Postgres.
type PGSettingsBackend struct {
	db *sql.DB
}

func NewPGSettingsBackend(db *sql.DB) *PGSettingsBackend {
	return &PGSettingsBackend{db: db}
}

func (b *PGSettingsBackend) Fetch(ctx context.Context) (string, bool, error) {
	var handle sql.NullString
	err := b.db.QueryRowContext(ctx, `SELECT telegram_username FROM settings LIMIT 1`).Scan(&handle)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return handle.String, true, nil
}

func (b *PGSettingsBackend) Save(ctx context.Context, handle string) error {
	var id string
	err := b.db.QueryRowContext(ctx, `SELECT id FROM settings LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		_, err = b.db.ExecContext(ctx, `
			INSERT INTO settings (id, telegram_username) VALUES ($1, $2)
		`, uuid.New().String(), handle)
		return err
	}
	if err != nil {
		return err
	}
	_, err = b.db.ExecContext(ctx, `
		UPDATE settings SET telegram_username = $1, updated_at = NOW() WHERE id = $2
	`, handle, id)
	return err
}
