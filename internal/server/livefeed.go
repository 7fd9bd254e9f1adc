package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"auctionhouse/internal/fanout"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

var errMissingAuctionIDs = errors.New("missing auction_ids")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Origin checks belong to the reverse proxy in this deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveFeedHandler streams fan-out events for a watched auction set over a
// websocket. Clients connect with ?auction_ids=id1,id2 and receive one
// JSON event per message; they reconcile by bid id, so redelivery after a
// reconnect is harmless.
type LiveFeedHandler struct {
	hub *fanout.Hub
}

// NewLiveFeedHandler creates a handler over the given hub.
func NewLiveFeedHandler(hub *fanout.Hub) *LiveFeedHandler {
	return &LiveFeedHandler{hub: hub}
}

// Handle handles GET /live
func (h *LiveFeedHandler) Handle(c *gin.Context) {
	ids := splitIDs(c.Query("auction_ids"))
	if len(ids) == 0 {
		utils.JSONError(c, http.StatusBadRequest, errMissingAuctionIDs, "auction_ids query parameter is required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		utils.Warn("live feed: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	events, cancel := h.hub.Subscribe(ids)
	defer cancel()

	// Writer goroutine: forwards events and keeps the connection alive.
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					// evicted by the hub; the client reconnects and re-fetches
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "subscriber too slow"),
						time.Now().Add(time.Second))
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// Read loop: consumes pongs and detects the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	cancel()
	<-done
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
