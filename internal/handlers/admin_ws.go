package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kirvedev/ilan-backend/internal/middleware"
	"github.com/kirvedev/ilan-backend/internal/services"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

const feedPingInterval = 30 * time.Second

// AdminFeedWS handles GET /ws/admin: listing change events pushed to the
// admin dashboard as they happen. Browser WebSocket clients cannot set an
// Authorization header, so the session token travels in the `token` query
// parameter.
func AdminFeedWS(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if !AdminGate.Authenticated(token) {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	conn, err := feedUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, unsubscribe := services.SubscribeListingFeed()
	defer unsubscribe()

	done := make(chan struct{})

	// Reader: we expect nothing from the dashboard; the loop exists to
	// notice the disconnect.
	go func() {
		defer close(done)
		conn.SetReadLimit(4 * 1024)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(feedPingInterval)
	defer ticker.Stop()

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
