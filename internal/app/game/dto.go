package game

import (
	"encoding/json"

	"hugoland/internal/domain/player"
)

type Request struct {
	Op     string          `json:"op"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Params is the union of every operation's arguments.
type Params struct {
	Cost     int             `json:"cost,omitempty"`
	Kind     player.ItemKind `json:"kind,omitempty"`
	ID       string          `json:"id,omitempty"`
	IDs      []string        `json:"ids,omitempty"`
	Hours    float64         `json:"hours,omitempty"`
	Hit      *bool           `json:"hit,omitempty"`
	Category string          `json:"category,omitempty"`
	Amount   int             `json:"amount,omitempty"`
}

type Response struct {
	Op       string               `json:"op"`
	Accepted bool                 `json:"accepted"`
	Reason   player.RejectReason  `json:"reason,omitempty"`
	State    player.State         `json:"state"`
	Events   []player.DomainEvent `json:"events,omitempty"`
	Reward   *player.Reward       `json:"reward,omitempty"`
}
