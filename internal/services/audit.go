package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kirvedev/ilan-backend/internal/database"
)

const auditCollection = "admin_activity"

// AuditEntry is one admin action recorded in MongoDB.
type AuditEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action     string             `bson:"action" json:"action"`           // created, updated, deleted, approved, settings_updated
	Resource   string             `bson:"resource" json:"resource"`       // listing, category, settings
	ResourceID string             `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	Detail     string             `bson:"detail,omitempty" json:"detail,omitempty"`
	At         time.Time          `bson:"at" json:"at"`
}

// EnsureAuditIndexes configures indexes for the activity collection.
// Called on startup from main after Mongo has connected.
func EnsureAuditIndexes(ctx context.Context) error {
	col := database.MongoDB.Collection(auditCollection)
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "at", Value: -1}},
		Options: options.Index().SetName("idx_at"),
	})
	return err
}

// RecordAuditAsync persists an entry asynchronously. Fire-and-forget: the
// admin response never waits on the activity log, and a Mongo outage only
// loses log entries.
func RecordAuditAsync(entry AuditEntry) {
	if database.MongoDB == nil {
		return
	}
	go func(e AuditEntry) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if e.At.IsZero() {
			e.At = time.Now().UTC()
		}
		col := database.MongoDB.Collection(auditCollection)
		_, _ = col.InsertOne(ctx, e)
	}(entry)
}

// RecentAuditEntries returns the newest entries, newest first. An empty
// trail comes back when the log store was never connected.
func RecentAuditEntries(ctx context.Context, limit int64) ([]AuditEntry, error) {
	if database.MongoDB == nil {
		return []AuditEntry{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	col := database.MongoDB.Collection(auditCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)

	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []AuditEntry{}
	for cur.Next(ctx) {
		var e AuditEntry
		if err := cur.Decode(&e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, cur.Err()
}
