package duration

import "time"

// DefaultMinutes is used for care types missing from the table.
const DefaultMinutes = 45

// Table maps a care type to its visit length in minutes. Keys match exactly.
type Table map[string]int

// DefaultTable returns the production visit lengths.
func DefaultTable() Table {
	return Table{
		"Wound Dressing":             45,
		"Post-operative Care":        60,
		"Medication Administration":  30,
		"Physical Therapy":           60,
		"Elderly Care":               50,
		"Nursing Care":               50,
		"Cardiac Care":               45,
		"Palliative Care":            60,
		"IV Therapy":                 40,
		"Respiratory Care":           45,
		"Diabetic Care":              30,
		"Chronic Disease Management": 45,
		"General Checkup":            30,
	}
}

// Resolver decides how long a visit takes.
type Resolver struct {
	table Table
}

// NewResolver copies t so later changes to the caller's map are not observed.
func NewResolver(t Table) *Resolver {
	if t == nil {
		t = DefaultTable()
	}
	cp := make(Table, len(t))
	for k, v := range t {
		cp[k] = v
	}
	return &Resolver{table: cp}
}

// Minutes returns a strictly positive override unchanged, else the table value, else DefaultMinutes.
func (r *Resolver) Minutes(careType string, override *int) int {
	if override != nil && *override > 0 {
		return *override
	}
	if m, ok := r.table[careType]; ok {
		return m
	}
	return DefaultMinutes
}

// Duration is Minutes as a time.Duration.
func (r *Resolver) Duration(careType string, override *int) time.Duration {
	return time.Duration(r.Minutes(careType, override)) * time.Minute
}
