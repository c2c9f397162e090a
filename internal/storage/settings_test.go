package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSettingsBackend struct {
	handle   string
	found    bool
	fetchErr error
	saveErr  error
	saved    []string
}

func (f *fakeSettingsBackend) Fetch(ctx context.Context) (string, bool, error) {
	return f.handle, f.found, f.fetchErr
}

func (f *fakeSettingsBackend) Save(ctx context.Context, handle string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, handle)
	return nil
}

type fakeLinkCache struct {
	link string
	has  bool
}

func (f *fakeLinkCache) GetLink(ctx context.Context) (string, bool) {
	return f.link, f.has
}

func (f *fakeLinkCache) SetLink(ctx context.Context, link string) error {
	f.link = link
	f.has = true
	return nil
}

func TestSettingsGetFromBackend(t *testing.T) {
	backend := &fakeSettingsBackend{handle: "foo", found: true}
	cache := &fakeLinkCache{}
	store := NewSettingsStore(backend, cache)

	got := store.Get(context.Background())

	assert.Equal(t, "https://t.me/foo", got.TelegramLink)
	assert.Equal(t, "foo", got.RawUsername)
	// Write-through: the cache mirrors the resolved link.
	assert.True(t, cache.has)
	assert.Equal(t, "https://t.me/foo", cache.link)
}

func TestSettingsGetBackendDownUsesCache(t *testing.T) {
	backend := &fakeSettingsBackend{fetchErr: errors.New("connection refused")}
	cache := &fakeLinkCache{link: "https://t.me/cached", has: true}
	store := NewSettingsStore(backend, cache)

	got := store.Get(context.Background())

	assert.Equal(t, "https://t.me/cached", got.TelegramLink)
}

func TestSettingsGetEverythingDownUsesDefault(t *testing.T) {
	backend := &fakeSettingsBackend{fetchErr: errors.New("connection refused")}
	store := NewSettingsStore(backend, &fakeLinkCache{})

	got := store.Get(context.Background())

	assert.Equal(t, DefaultTelegramLink, got.TelegramLink)
}

func TestSettingsGetEmptyRowFallsBackToDefaultHandle(t *testing.T) {
	backend := &fakeSettingsBackend{handle: "", found: true}
	cache := &fakeLinkCache{}
	store := NewSettingsStore(backend, cache)

	got := store.Get(context.Background())

	assert.Equal(t, DefaultTelegramLink, got.TelegramLink)
	assert.Equal(t, DefaultTelegramLink, cache.link)
}

func TestSettingsUpdateSavesToBackend(t *testing.T) {
	backend := &fakeSettingsBackend{}
	cache := &fakeLinkCache{}
	store := NewSettingsStore(backend, cache)

	result := store.Update(context.Background(), "https://t.me/bar")

	assert.True(t, result.Success)
	assert.Empty(t, result.Note)
	assert.Equal(t, []string{"bar"}, backend.saved)
	assert.Equal(t, "https://t.me/bar", cache.link)
}

func TestSettingsUpdateBackendDownStillSucceeds(t *testing.T) {
	backend := &fakeSettingsBackend{saveErr: errors.New("connection refused")}
	cache := &fakeLinkCache{}
	store := NewSettingsStore(backend, cache)

	result := store.Update(context.Background(), "https://t.me/bar")

	// Availability over consistency: the admin never sees a hard failure.
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Note)
	assert.Equal(t, "https://t.me/bar", cache.link)
}

func TestResolveTelegramLink(t *testing.T) {
	cases := []struct {
		handle string
		want   string
	}{
		{"foo", "https://t.me/foo"},
		{"@foo", "https://t.me/foo"},
		{"https://t.me/foo", "https://t.me/foo"},
		{"http://example.com/x", "http://example.com/x"},
		{"", DefaultTelegramLink},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveTelegramLink(tc.handle), "handle %q", tc.handle)
	}
}

func TestExtractTelegramHandle(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://t.me/bar", "bar"},
		{"https://t.me/bar/", "bar"},
		{"t.me/bar", "bar"},
		{"plainhandle", "plainhandle"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractTelegramHandle(tc.link), "link %q", tc.link)
	}
}
