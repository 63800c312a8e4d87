package domain

import (
	"time"

	"github.com/google/uuid"
)

// Professional is a mobile health professional.
type Professional struct {
	ID              uuid.UUID
	Name            string
	Specializations []string
	WorkingHours    []WorkingHours
	CreatedAt       time.Time
}

// WorkingHours is a professional's visit window on one weekday.
type WorkingHours struct {
	ProfessionalID uuid.UUID
	Weekday        Weekday
	Start          ClockTime
	End            ClockTime
}

// HoursOn returns the working hours for the weekday or nil when the professional is off.
func (p Professional) HoursOn(wd Weekday) *WorkingHours {
	for i := range p.WorkingHours {
		if p.WorkingHours[i].Weekday == wd {
			return &p.WorkingHours[i]
		}
	}
	return nil
}
