package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"voltbite/internal/handler/httperr"
	"voltbite/internal/handler/middleware"
	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/pkg/config"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	hub       *notify.Hub
	clock     clock.Clock
	heartbeat time.Duration
}

func NewNotificationHandler(hub *notify.Hub, clock clock.Clock, cfg config.Config) *NotificationHandler {
	return &NotificationHandler{
		hub:       hub,
		clock:     clock,
		heartbeat: cfg.Coordination.StreamHeartbeat,
	}
}

// @Summary Notification stream
// @Description Server-sent event stream of the caller's notifications; at most one stream per user
// @Tags notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	mb := h.hub.Attach(userID)
	defer h.hub.Detach(userID, mb)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	if err := h.writeEvent(c.Writer, notify.Connected{Time: h.clock.Now()}); err != nil {
		return
	}
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-mb.Done():
			// A reconnect replaced this mailbox; the old stream ends here.
			return false
		case <-mb.Wake():
			for _, event := range mb.Drain() {
				if err := h.writeEvent(w, event); err != nil {
					// A dead client is detected on write; detach via defer.
					return false
				}
			}
			return true
		case <-heartbeat.C:
			return h.writeEvent(w, notify.Ping{Time: h.clock.Now()}) == nil
		}
	})
}

func (h *NotificationHandler) writeEvent(w io.Writer, event notify.Event) error {
	return sse.Encode(w, sse.Event{
		Event: event.EventName(),
		Data:  event,
	})
}
