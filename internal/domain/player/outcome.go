package player

import "time"

type RejectReason string

const (
	ReasonInsufficientCoins  RejectReason = "insufficient_coins"
	ReasonInsufficientGems   RejectReason = "insufficient_gems"
	ReasonInsufficientShiny  RejectReason = "insufficient_shiny_gems"
	ReasonInsufficientPoints RejectReason = "insufficient_skill_points"
	ReasonNotFound           RejectReason = "not_found"
	ReasonEquipped           RejectReason = "item_equipped"
	ReasonRelicSlotsFull     RejectReason = "relic_slots_full"
	ReasonInvalidState       RejectReason = "invalid_state"
	ReasonNotReady           RejectReason = "not_ready"
	ReasonInvalidParams      RejectReason = "invalid_params"
	ReasonMaxLevel           RejectReason = "max_level"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Reward describes what a transform granted, for callers that display it.
type Reward struct {
	Coins   int      `json:"coins,omitempty"`
	Gems    int      `json:"gems,omitempty"`
	Shiny   int      `json:"shiny_gems,omitempty"`
	Weapons []Weapon `json:"weapons,omitempty"`
	Armor   []Armor  `json:"armor,omitempty"`
	Relics  []Relic  `json:"relics,omitempty"`
}

// Outcome is the result of a transform. A rejected outcome carries the input document.
type Outcome struct {
	State    State         `json:"state"`
	Accepted bool          `json:"accepted"`
	Reason   RejectReason  `json:"reason,omitempty"`
	Events   []DomainEvent `json:"events,omitempty"`
	Reward   *Reward       `json:"reward,omitempty"`
}

func reject(s State, reason RejectReason) Outcome {
	return Outcome{State: s, Reason: reason}
}

func accept(s State, events ...DomainEvent) Outcome {
	return Outcome{State: s, Accepted: true, Events: events}
}

func event(kind string, now time.Time, payload map[string]any) DomainEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return DomainEvent{Type: kind, OccurredAt: now, Payload: payload}
}
