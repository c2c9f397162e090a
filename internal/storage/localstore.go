package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kirvedev/ilan-backend/internal/models"
)

const localListingsFile = "listings.json"

// LocalStore is the legacy file-backed listing repository, kept as a
// parallel data layer so the service can still serve and edit listings when
// Postgres is unreachable. All operations rewrite the whole file; there are
// no cross-call transaction semantics.
type LocalStore struct {
	mu   sync.Mutex
	path string
}

func NewLocalStore(dataDir string) (*LocalStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &LocalStore{path: filepath.Join(dataDir, localListingsFile)}, nil
}

func (s *LocalStore) ListAll(ctx context.Context) []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		log.Printf("localstore: error reading listings: %v", err)
		return []models.Listing{}
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings
}

func (s *LocalStore) GetByID(ctx context.Context, id string) *models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		log.Printf("localstore: error reading listings: %v", err)
		return nil
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i]
		}
	}
	return nil
}

func (s *LocalStore) Create(ctx context.Context, in models.Listing) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		return nil, err
	}

	in.ID = uuid.New().String()
	in.CreatedAt = time.Now().UTC()
	if in.Photos == nil {
		in.Photos = []string{}
	}
	listings = append(listings, in)

	if err := s.save(listings); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *LocalStore) Update(ctx context.Context, id string, in models.Listing) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range listings {
		if listings[i].ID != id {
			continue
		}
		// Identifier and creation time survive whatever the payload says.
		in.ID = id
		in.CreatedAt = listings[i].CreatedAt
		if in.Photos == nil {
			in.Photos = []string{}
		}
		listings[i] = in
		if err := s.save(listings); err != nil {
			return nil, err
		}
		return &listings[i], nil
	}
	return nil, fmt.Errorf("listing not found")
}

func (s *LocalStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		return err
	}

	filtered := listings[:0]
	found := false
	for _, l := range listings {
		if l.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, l)
	}
	if !found {
		return fmt.Errorf("listing not found")
	}
	return s.save(filtered)
}

func (s *LocalStore) load() ([]models.Listing, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.Listing{}, nil
	}
	if err != nil {
		return nil, err
	}
	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *LocalStore) save(listings []models.Listing) error {
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
