package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kirvedev/ilan-backend/internal/models"
)

// CategoryStore is a plain CRUD passthrough; no schema translation.
type CategoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) ListAll(ctx context.Context) []models.Category {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, name, COALESCE(slug, '')
		FROM categories
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("error fetching categories: %v", err)
		return []models.Category{}
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.Name, &c.Slug); err != nil {
			log.Printf("error scanning category: %v", err)
			continue
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		log.Printf("error fetching categories: %v", err)
		return []models.Category{}
	}
	return categories
}

func (s *CategoryStore) Create(ctx context.Context, in models.Category) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, name, slug)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, name, COALESCE(slug, '')
	`, uuid.New().String(), in.Name, in.Slug).Scan(&c.ID, &c.CreatedAt, &c.Name, &c.Slug)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

func (s *CategoryStore) Update(ctx context.Context, id string, in models.Category) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, slug = $2
		WHERE id = $3
		RETURNING id, created_at, name, COALESCE(slug, '')
	`, in.Name, in.Slug, id).Scan(&c.ID, &c.CreatedAt, &c.Name, &c.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}
