package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/service/events"
)

// EventDTO is the wire form of a patient event
type EventDTO struct {
	PatientID  string    `json:"patient_id"`
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to events.Event. A malformed patient id is permanent.
func ToDomain(dto EventDTO) (events.Event, error) {
	id, err := uuid.Parse(strings.TrimSpace(dto.PatientID))
	if err != nil {
		return events.Event{}, Permanent(fmt.Errorf("patient_id %q: %w", dto.PatientID, err))
	}
	return events.Event{
		PatientID:  id,
		Kind:       strings.TrimSpace(dto.Event),
		OccurredAt: dto.OccurredAt,
	}, nil
}
