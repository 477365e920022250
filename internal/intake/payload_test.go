package intake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stoneworks/lead-intake/internal/catalog"
)

func TestBuildPayload(t *testing.T) {
	s := NewFormState(nil)
	s.Service = catalog.InterlockRepair
	s.FullName = "  Jordan Miller "
	s.SetPhone("6138508158")
	s.Email = "jordan@example.com"
	s.SetPostalCode("k1k4w3")
	s.Address = "840 Montréal Rd"
	s.Message = "Back walkway has sunk near the steps."
	s.Details.IssueType = "sinking corner"

	now := time.Date(2026, 8, 31, 14, 32, 0, 0, time.UTC)
	p := BuildPayload(s, []string{"https://example.com/a.jpg"}, now)

	assert.Equal(t, "Jordan Miller", p.FullName)
	assert.Equal(t, "(613) 850-8158", p.Phone)
	assert.Equal(t, "K1K 4W3", p.PostalCode)
	assert.Equal(t, "interlock-repair", p.Service)
	assert.Equal(t, "Interlock Repair", p.ServiceName)
	assert.Equal(t, "call", p.PreferredContact)
	assert.Equal(t, "2026-08-31 14:32", p.SubmittedAt)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, p.PhotoURLs)
	assert.Equal(t, "Issue type: sinking corner", p.ProjectDetails)
}

func TestProjectDetailsStableOrder(t *testing.T) {
	// interlock-repair shows issue type, approx area and urgency; filling
	// exactly those three produces exactly three lines in catalog order.
	s := NewFormState(nil)
	s.Service = catalog.InterlockRepair
	s.Details.IssueType = "sinking corner"
	s.Details.ApproxArea = "10x12"
	s.Details.Urgency = "ASAP"

	visible := s.Rules().Visible()
	assert.Equal(t, []catalog.DetailField{catalog.FieldIssueType, catalog.FieldApproxArea, catalog.FieldUrgency}, visible)

	p := BuildPayload(s, nil, time.Now())
	lines := strings.Split(p.ProjectDetails, "\n")
	assert.Equal(t, []string{
		"Issue type: sinking corner",
		"Approx area: 10x12",
		"Urgency: ASAP",
	}, lines)
}

func TestProjectDetailsSkipsEmptyFields(t *testing.T) {
	s := NewFormState(nil)
	s.Details.Timeline = "   "
	s.Details.WeedIssue = Yes

	p := BuildPayload(s, nil, time.Now())
	assert.Equal(t, "Weed issue: yes", p.ProjectDetails)
}

func TestProjectDetailsEmptyWhenNothingEntered(t *testing.T) {
	p := BuildPayload(NewFormState(nil), nil, time.Now())
	assert.Empty(t, p.ProjectDetails)
}
