package skill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"homecare-scheduler/internal/service/skill"
)

func TestMatcher_Matches(t *testing.T) {
	t.Parallel()

	m := skill.NewMatcher(nil)

	tests := []struct {
		name  string
		need  string
		specs []string
		want  bool
	}{
		{"exact", "wound care", []string{"Wound Care"}, true},
		{"unrelated", "wound care", []string{"Cardiology"}, false},
		{"empty need", "", []string{"Wound Care"}, false},
		{"blank need", "   ", []string{"Wound Care"}, false},
		{"no specs", "wound care", nil, false},
		{"blank specs only", "wound care", []string{"", "  "}, false},
		{"upper need", "WOUND CARE", []string{"wound care"}, true},
		{"fallback specialization", "wound care", []string{"Home Health Aide"}, true},
		{"need contains key", "post-surgery wound care", []string{"Nursing Care"}, true},
		{"specialization contains accepted", "cardiac care", []string{"Pediatric Cardiology"}, true},
		{"accepted contains specialization", "iv therapy", []string{"infusion"}, true},
		{"no key in need", "Wound Dressing", []string{"Nursing Care"}, false},
		{"second specialization matches", "physical therapy", []string{"Cardiology", "Physiotherapy"}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, m.Matches(tc.need, tc.specs))
		})
	}
}

func TestMatcher_InjectedTable(t *testing.T) {
	t.Parallel()

	m := skill.NewMatcher(skill.Table{
		{CareType: "Stoma Care", Specializations: []string{"Ostomy Nurse"}},
	})

	require.True(t, m.Matches("stoma care", []string{"ostomy nurse"}))
	require.False(t, m.Matches("wound care", []string{"Home Health Aide"}))
	require.False(t, skill.NewMatcher(skill.Table{}).Matches("wound care", []string{"Nursing Care"}))
}
