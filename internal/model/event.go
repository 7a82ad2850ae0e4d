package model

import (
	"time"
)

const EventStatusDone = "done"

// NotificationEvent is ephemeral: it lives only inside the relay queue
// and is never persisted.
type NotificationEvent struct {
	ConversationID string    `json:"conversation_id"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}
