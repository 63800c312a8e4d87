package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

// Calculator finds the next start time for a professional on a date.
type Calculator struct {
	capacity int
	spacing  time.Duration
	minSlot  time.Duration
}

// NewCalculator uses the system-wide capacity and spacing constants.
func NewCalculator() *Calculator {
	return &Calculator{
		capacity: domain.DailyCapacity,
		spacing:  domain.SlotSpacing,
		minSlot:  domain.MinSlotLength,
	}
}

// Capacity is the daily visit limit.
func (c *Calculator) Capacity() int { return c.capacity }

// Evaluate applies the slot rules to a working-hours window and the current count.
// A nil window means the professional does not work that day.
func (c *Calculator) Evaluate(hours *domain.WorkingHours, count int) domain.Slot {
	s := domain.Slot{MaxCapacity: c.capacity}
	if hours == nil {
		s.Reason = domain.ReasonNoWorkingHours
		return s
	}

	s.PatientCountOnDay = count
	s.WorkingEnd = hours.End
	if count >= c.capacity {
		s.Reason = fmt.Sprintf("daily capacity reached (%d/%d patients)", count, c.capacity)
		return s
	}

	start := hours.Start.Add(time.Duration(count) * c.spacing)
	if start.Add(c.minSlot) > hours.End {
		s.Reason = domain.ReasonNoTimeSlots
		return s
	}

	s.Available = true
	s.SuggestedTime = start
	return s
}

// Available reads working hours and load through r. The store count is read on every
// call so commits made outside the batch are seen; batch only raises it.
func (c *Calculator) Available(ctx context.Context, r Reader, professionalID uuid.UUID, date time.Time, batch *BatchLoad) (domain.Slot, error) {
	hours, err := r.GetWorkingHours(ctx, professionalID, domain.WeekdayOf(date))
	if err != nil {
		return domain.Slot{}, fmt.Errorf("working hours: %w", err)
	}
	if hours == nil {
		return c.Evaluate(nil, 0), nil
	}

	count, err := r.CountActiveAssignments(ctx, professionalID, date)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("count assignments: %w", err)
	}
	count = batch.observe(professionalID, date, count)

	return c.Evaluate(hours, count), nil
}
