package replay

import (
	"time"

	"hugoland/internal/domain/player"
)

type Request struct {
	Limit int
	Types []string
	From  time.Time
	To    time.Time
}

type Response struct {
	Events []player.DomainEvent `json:"events"`
	Counts map[string]int       `json:"counts"`
}
