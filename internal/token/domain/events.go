package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventMinted          EventKind = "minted"
	EventBurned          EventKind = "burned"
	EventTransferred     EventKind = "transferred"
	EventRedeemed        EventKind = "redeemed"
	EventItemAdded       EventKind = "item_added"
	EventItemCostUpdated EventKind = "item_cost_updated"
	EventItemRemoved     EventKind = "item_removed"
)

// Event describes one committed mutation.
//
// Account is the account whose state changed (the recipient of a mint, the holder of burned or sent
// units, the redeemer) or the administrator for catalog changes. Counterparty is the transfer
// recipient, the administrator credited by a redemption, or the administrator burning on behalf of Account.
type Event struct {
	ID           uuid.UUID
	Kind         EventKind
	Account      Address
	Counterparty Address
	ItemID       uint64
	ItemName     string
	Amount       uint64
	OccurredAt   time.Time
}

//go:generate mockgen -destination=../../../gen/mocks/token/sink.go -package=mocks . EventSink
type EventSink interface {
	Publish(event Event)
}

type nopSink struct{}

func (nopSink) Publish(Event) {}

// MultiSink publishes every event to each sink in order.
type MultiSink []EventSink

func (m MultiSink) Publish(event Event) {
	for _, sink := range m {
		sink.Publish(event)
	}
}
