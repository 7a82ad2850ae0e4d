package model

import (
	"encoding/json"
	"time"
)

type TemplateList []Template

// Template content is an opaque document owned by the editor frontend.
type Template struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Content   json.RawMessage `db:"content" json:"content"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Settings is a single opaque document per tenant/stage.
type Settings struct {
	Data      json.RawMessage `db:"data" json:"data"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
