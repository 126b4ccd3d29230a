package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/handler/http/response"
	"github.com/raminfosys/erp-backend-go/internal/service/changefeed"
)

const defaultKeepalive = 30 * time.Second

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	changefeedService *changefeed.Service
	keepalive         time.Duration
}

func NewEventsHandler(changefeedService *changefeed.Service) EventsHandler {
	return &EventsHandlerImpl{
		changefeedService: changefeedService,
		keepalive:         defaultKeepalive,
	}
}

// Stream pushes a "changed" event after every store write until the client
// disconnects. The token comes from the query string since EventSource
// cannot set headers.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.changefeedService.Subscribe()
	defer cleanup()

	slog.Debug("Event stream opened", "user_id", sess.UserID, "subscribers", h.changefeedService.Subscribers())

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", sess.UserID)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: {}\n\n", event.Event)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			slog.Debug("Event stream closed", "user_id", sess.UserID)
			return
		}
	}
}
