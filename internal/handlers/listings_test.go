package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirvedev/ilan-backend/internal/models"
)

func TestPartitionListings(t *testing.T) {
	all := []models.Listing{
		{ID: "a", AdminApproved: true},
		{ID: "b"},
		{ID: "c", AdminApproved: true},
		{ID: "d"},
		{ID: "e"},
	}

	approved, others := partitionListings(all)

	assert.Len(t, approved, 2)
	assert.Len(t, others, 3)

	// Disjoint, and together they cover the full set.
	seen := map[string]int{}
	for _, l := range approved {
		assert.True(t, l.AdminApproved)
		seen[l.ID]++
	}
	for _, l := range others {
		assert.False(t, l.AdminApproved)
		seen[l.ID]++
	}
	assert.Len(t, seen, len(all))
	for id, n := range seen {
		assert.Equal(t, 1, n, "listing %s appears in both groups", id)
	}
}

func TestPartitionListingsEmpty(t *testing.T) {
	approved, others := partitionListings(nil)
	assert.NotNil(t, approved)
	assert.NotNil(t, others)
	assert.Empty(t, approved)
	assert.Empty(t, others)
}
