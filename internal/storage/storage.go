package storage

import "time"

// Turn is one resolved conversation turn: the trigger that started it, the
// prompt that went out and the reply that came back. Recorded for audit
// purposes only; the live transcript never reads from here.
type Turn struct {
	Trigger   string    `json:"trigger"`
	Prompt    string    `json:"prompt"`
	Reply     string    `json:"reply"`
	Failed    bool      `json:"failed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Recorder interface {
	AppendTurn(turn Turn) error
}
