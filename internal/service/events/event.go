package events

import (
	"time"

	"github.com/google/uuid"
)

// Kinds of patient events.
const (
	KindCreated        = "created"
	KindAddressChanged = "address_changed"
)

// Event is a single patient event
type Event struct {
	PatientID  uuid.UUID
	Kind       string
	OccurredAt time.Time
}
