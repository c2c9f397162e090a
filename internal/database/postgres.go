package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL database
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize tables
	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// InitPostgresTables creates all necessary tables if they don't exist.
// Listing columns keep the legacy Turkish names of the hosted backend this
// service replaced; the English application names exist only in
// internal/storage/mapping.go.
func InitPostgresTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS listings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			bayan VARCHAR(255) NOT NULL,
			aciklama TEXT NOT NULL,
			telefon VARCHAR(32) NOT NULL,
			resim_url TEXT,
			onaylandi BOOLEAN NOT NULL DEFAULT FALSE,
			boy VARCHAR(50),
			kilo VARCHAR(50),
			kondom BOOLEAN NOT NULL DEFAULT FALSE,
			resimler TEXT[] NOT NULL DEFAULT '{}',
			sehir VARCHAR(100),
			yas INTEGER,
			hizmetler TEXT,
			fiyat VARCHAR(100)
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255)
		)`,

		// Single logical row; the store always targets the first row it finds.
		`CREATE TABLE IF NOT EXISTS settings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			telegram_username VARCHAR(255)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_listings_created_at ON listings(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_onaylandi ON listings(onaylandi)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories(created_at)`,
	}

	for _, query := range queries {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
