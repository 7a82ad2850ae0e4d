package model

import (
	"time"
)

const DefaultConversationTitle = "New Chat"

type ConversationList []Conversation

type Conversation struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	IsPinned  bool      `db:"is_pinned" json:"is_pinned"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ConversationPatch carries the mutable fields of a conversation; nil
// means "leave unchanged".
type ConversationPatch struct {
	Title    *string
	IsPinned *bool
}
