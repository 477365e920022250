package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesFor(t *testing.T) {
	rules := RulesFor(InterlockRepair)
	assert.True(t, rules.ShowIssueType)
	assert.True(t, rules.ShowApproxArea)
	assert.True(t, rules.ShowUrgency)
	assert.False(t, rules.ShowApproxSqFt)
	assert.False(t, rules.ShowStylePreference)
	assert.False(t, rules.ShowTimeline)
	assert.False(t, rules.ShowBudgetRange)
	assert.False(t, rules.ShowLastServiceDate)
	assert.False(t, rules.ShowWeedIssue)
	assert.False(t, rules.ShowPetFriendly)
	assert.False(t, rules.ShowDrainageIssues)
}

func TestRulesForUnknownServiceHidesEverything(t *testing.T) {
	rules := RulesFor("snow-removal")
	assert.Equal(t, FieldRules{}, rules)
	assert.Empty(t, rules.Visible())
}

func TestVisibleOrderIsStable(t *testing.T) {
	got := RulesFor(InterlockRepair).Visible()
	want := []DetailField{FieldIssueType, FieldApproxArea, FieldUrgency}
	assert.Equal(t, want, got)

	got = RulesFor(InterlockInstallation).Visible()
	want = []DetailField{FieldApproxSqFt, FieldStylePreference, FieldTimeline, FieldBudgetRange}
	assert.Equal(t, want, got)
}

func TestEnabledMatchesVisible(t *testing.T) {
	for _, svc := range All() {
		visible := map[DetailField]bool{}
		for _, f := range svc.Rules.Visible() {
			visible[f] = true
		}
		for _, f := range detailFieldOrder {
			if svc.Rules.Enabled(f) != visible[f] {
				t.Errorf("%s: Enabled(%s)=%v but Visible says %v", svc.ID, f, svc.Rules.Enabled(f), visible[f])
			}
		}
	}
}

func TestByID(t *testing.T) {
	svc, ok := ByID(TurfInstallation)
	assert.True(t, ok)
	assert.Equal(t, "Turf Installation", svc.Name)

	_, ok = ByID("lawn-mowing")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pressure Washing + Resanding", DisplayName(PressureWashingResand))
	assert.Equal(t, "mystery-service", DisplayName("mystery-service"))
}

func TestCatalogCovers7Services(t *testing.T) {
	assert.Len(t, All(), 7)
}
