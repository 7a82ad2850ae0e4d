package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chatbot-service/internal/config"
	api "github.com/s21platform/chatbot-service/internal/generated"
)

// StreamEvents is the long-lived notification stream. Each relay event is
// written as a named SSE event and flushed immediately. The loop ends when
// the peer disconnects (observed via the request context between
// deliveries) or the relay shuts down.
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamEvents")

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("response writer does not support streaming")
		h.writeError(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		event, err := h.relay.Next(r.Context())
		if err != nil {
			// Peer disconnect or relay shutdown; either way the stream is over.
			return
		}

		payload, err := json.Marshal(api.NotificationEvent{
			ConversationId: event.ConversationID,
			Status:         event.Status,
			Message:        event.Message,
			Timestamp:      event.Timestamp,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to marshal notification event: %v", err))
			continue
		}

		if _, err := fmt.Fprintf(w, "event: notification\ndata: %s\n\n", payload); err != nil {
			logger.Error(fmt.Sprintf("failed to write notification event: %v", err))
			return
		}
		flusher.Flush()
	}
}
