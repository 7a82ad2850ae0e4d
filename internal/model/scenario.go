package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TenantScope is pure path scoping; no isolation is enforced beyond
// keying stored records by it.
type TenantScope struct {
	TenantID string `db:"tenant_id" json:"tenant_id"`
	Stage    string `db:"stage" json:"stage"`
}

type ScenarioList []Scenario

// Scenario is a stored, uninterpreted flow graph. Edges may reference
// missing nodes and graphs may be disconnected; the service stores and
// returns the structure verbatim.
type Scenario struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Job         string    `db:"job" json:"job"`
	Nodes       NodeList  `db:"nodes" json:"nodes"`
	Edges       EdgeList  `db:"edges" json:"edges"`
	StartNodeID *string   `db:"start_node_id" json:"start_node_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type NodeList []Node

type Node struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position Position        `json:"position"`
	Data     json.RawMessage `json:"data,omitempty"`
	Size     *Size           `json:"size,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Value / Scan store node collections as JSONB.
func (n NodeList) Value() (driver.Value, error) {
	if n == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(n)
}

func (n *NodeList) Scan(src interface{}) error {
	return scanJSON(src, n)
}

type EdgeList []Edge

func (e EdgeList) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e)
}

func (e *EdgeList) Scan(src interface{}) error {
	return scanJSON(src, e)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

type Edge struct {
	ID           string  `json:"id"`
	Source       string  `json:"source"`
	Target       string  `json:"target"`
	SourceHandle *string `json:"source_handle,omitempty"`
}
