package domain

import "time"

// Stream names (must match consumers in cmd/worker)
const (
	StreamCartUpdated = "stream:cart:updated"
)

// Cart event actions
const (
	CartActionAdd      = "add"
	CartActionRemove   = "remove"
	CartActionClear    = "clear"
	CartActionCheckout = "checkout"
)

// CartUpdatedEvent is published after every cart-mutating operation. The
// summary worker rebuilds the cached cart projection from it.
type CartUpdatedEvent struct {
	UserID string    `json:"user_id"`
	Action string    `json:"action"`
	ItemID string    `json:"item_id,omitempty"`
	At     time.Time `json:"at"`
}

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
