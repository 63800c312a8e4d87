// Package skill decides whether a professional's specializations cover a patient's care need.
package skill

import "strings"

// Rule lists the specializations accepted for one care type.
type Rule struct {
	CareType        string
	Specializations []string
}

// Table is an ordered list of rules. Order decides which rule is tried first.
type Table []Rule

// DefaultTable returns the care-type table used in production.
func DefaultTable() Table {
	return Table{
		{CareType: "wound care", Specializations: []string{"Wound Care", "Nursing Care", "Home Health Aide"}},
		{CareType: "medication administration", Specializations: []string{"Medication Administration", "Nursing Care", "Pharmacy"}},
		{CareType: "physical therapy", Specializations: []string{"Physical Therapy", "Physiotherapy", "Rehabilitation"}},
		{CareType: "elderly care", Specializations: []string{"Elderly Care", "Geriatrics", "Nursing Care", "Home Health Aide"}},
		{CareType: "palliative care", Specializations: []string{"Palliative Care", "Hospice Care", "Nursing Care"}},
		{CareType: "iv therapy", Specializations: []string{"IV Therapy", "Infusion Therapy", "Nursing Care"}},
		{CareType: "respiratory care", Specializations: []string{"Respiratory Care", "Respiratory Therapy", "Nursing Care"}},
		{CareType: "diabetic care", Specializations: []string{"Diabetic Care", "Diabetes Management", "Nursing Care"}},
		{CareType: "nursing care", Specializations: []string{"Nursing Care", "Registered Nurse", "Home Health Aide"}},
		{CareType: "chronic disease management", Specializations: []string{"Chronic Disease Management", "Nursing Care", "General Practice"}},
		{CareType: "cardiac care", Specializations: []string{"Cardiac Care", "Cardiology", "Nursing Care"}},
		{CareType: "general checkup", Specializations: []string{"General Practice", "Nursing Care", "Home Health Aide"}},
	}
}

// Matcher evaluates care needs against specializations. Safe for concurrent use.
type Matcher struct {
	rules Table
}

// NewMatcher builds a Matcher over a lowercased copy of the table.
// A nil table means DefaultTable.
func NewMatcher(t Table) *Matcher {
	if t == nil {
		t = DefaultTable()
	}
	rules := make(Table, 0, len(t))
	for _, r := range t {
		specs := make([]string, 0, len(r.Specializations))
		for _, s := range r.Specializations {
			specs = append(specs, strings.ToLower(strings.TrimSpace(s)))
		}
		rules = append(rules, Rule{
			CareType:        strings.ToLower(strings.TrimSpace(r.CareType)),
			Specializations: specs,
		})
	}
	return &Matcher{rules: rules}
}

// Matches reports whether any specialization satisfies careNeeded.
func (m *Matcher) Matches(careNeeded string, specializations []string) bool {
	need := strings.ToLower(strings.TrimSpace(careNeeded))
	if need == "" || len(specializations) == 0 {
		return false
	}

	have := make([]string, 0, len(specializations))
	for _, s := range specializations {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if s == need {
			return true
		}
		have = append(have, s)
	}

	for _, r := range m.rules {
		if r.CareType == "" || !strings.Contains(need, r.CareType) {
			continue
		}
		for _, accepted := range r.Specializations {
			for _, s := range have {
				if strings.Contains(s, accepted) || strings.Contains(accepted, s) {
					return true
				}
			}
		}
	}
	return false
}
