package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/kirvedev/ilan-backend/internal/database"
	"github.com/kirvedev/ilan-backend/internal/models"
)

// The admin dashboard keeps a WebSocket open and gets listing changes pushed
// as they happen. Events travel through Redis pub/sub so every instance fans
// out to its own local connections.

const listingEventsChannel = "listings:events"

const (
	EventListingCreated = "listing_created"
	EventListingUpdated = "listing_updated"
	EventListingDeleted = "listing_deleted"
)

// ListingEvent is the payload broadcast over Redis and WebSocket.
type ListingEvent struct {
	Type      string          `json:"type"`
	ListingID string          `json:"listing_id"`
	Listing   *models.Listing `json:"listing,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type listingFeedHub struct {
	mu          sync.Mutex
	subscribers map[chan ListingEvent]struct{}
}

var (
	feedHub     = &listingFeedHub{subscribers: make(map[chan ListingEvent]struct{})}
	feedStarted sync.Once
)

// SubscribeListingFeed registers a local subscriber. The returned cancel
// func must be called on disconnect.
func SubscribeListingFeed() (<-chan ListingEvent, func()) {
	ch := make(chan ListingEvent, 16)

	feedHub.mu.Lock()
	feedHub.subscribers[ch] = struct{}{}
	feedHub.mu.Unlock()

	unsubscribe := func() {
		feedHub.mu.Lock()
		if _, ok := feedHub.subscribers[ch]; ok {
			delete(feedHub.subscribers, ch)
			close(ch)
		}
		feedHub.mu.Unlock()
	}
	return ch, unsubscribe
}

func fanOutListingEvent(event ListingEvent) {
	feedHub.mu.Lock()
	defer feedHub.mu.Unlock()

	for ch := range feedHub.subscribers {
		select {
		case ch <- event:
		default:
			// Slow consumer; drop rather than block the subscriber loop.
		}
	}
}

// PublishListingEvent publishes an event to Redis; called from the admin
// handlers after a successful write.
func PublishListingEvent(ctx context.Context, event ListingEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return database.RedisClient.Publish(ctx, listingEventsChannel, data).Err()
}

// StartListingFeedSubscriber ensures a single shared Redis listener per instance.
func StartListingFeedSubscriber(ctx context.Context) {
	feedStarted.Do(func() {
		go runListingFeedSubscriber(ctx)
	})
}

func runListingFeedSubscriber(ctx context.Context) {
	client := database.RedisClient
	if client == nil {
		log.Println("Redis client not initialized; listing feed subscriber not started")
		return
	}

	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			pubsub := client.Subscribe(ctx, listingEventsChannel)
			defer pubsub.Close()

			log.Println("✅ Listing feed subscriber started (channel: " + listingEventsChannel + ")")

			for {
				msg, err := pubsub.ReceiveMessage(ctx)
				if err != nil {
					log.Printf("listing feed subscriber error: %v", err)
					time.Sleep(backoff)
					backoff *= 2
					if backoff > 30*time.Second {
						backoff = 30 * time.Second
					}
					return
				}

				backoff = time.Second

				var event ListingEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("failed to unmarshal listing event: %v", err)
					continue
				}
				fanOutListingEvent(event)
			}
		}()
	}
}
