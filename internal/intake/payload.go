package intake

import (
	"strings"
	"time"

	"github.com/stoneworks/lead-intake/internal/catalog"
)

// submittedAtLayout is the human-readable timestamp used in notification
// emails and lead records.
const submittedAtLayout = "2006-01-02 15:04"

// LeadPayload is the immutable snapshot handed to the persistence and
// notification collaborators. Built once per submit attempt, never mutated.
type LeadPayload struct {
	FullName         string   `json:"fullName" validate:"required"`
	Phone            string   `json:"phone" validate:"required"`
	Email            string   `json:"email" validate:"required"`
	PostalCode       string   `json:"postalCode" validate:"required"`
	City             string   `json:"city" validate:"required"`
	Address          string   `json:"address,omitempty"`
	PreferredContact string   `json:"preferredContactMethod"`
	Service          string   `json:"serviceSelected"`
	ServiceName      string   `json:"serviceName"`
	Message          string   `json:"message,omitempty"`
	SubmittedAt      string   `json:"submittedAt"`
	ProjectDetails   string   `json:"projectDetailsText,omitempty"`
	PhotoURLs        []string `json:"photoUrls,omitempty"`
}

// BuildPayload assembles the lead snapshot from the form state plus the
// uploaded photo URLs. Detail fields are folded into a multi-line project
// details text: one "Label: value" line per non-empty field, in the
// catalog's fixed field order.
func BuildPayload(s *FormState, photoURLs []string, now time.Time) *LeadPayload {
	return &LeadPayload{
		FullName:         strings.TrimSpace(s.FullName),
		Phone:            strings.TrimSpace(s.Phone),
		Email:            strings.TrimSpace(s.Email),
		PostalCode:       strings.TrimSpace(s.PostalCode),
		City:             strings.TrimSpace(s.City),
		Address:          strings.TrimSpace(s.Address),
		PreferredContact: string(s.PreferredContact),
		Service:          string(s.Service),
		ServiceName:      catalog.DisplayName(s.Service),
		Message:          strings.TrimSpace(s.Message),
		SubmittedAt:      now.Format(submittedAtLayout),
		ProjectDetails:   projectDetailsText(s.Details),
		PhotoURLs:        photoURLs,
	}
}

func projectDetailsText(d Details) string {
	var lines []string
	for _, f := range catalog.AllDetailFields() {
		if v := strings.TrimSpace(d.Value(f)); v != "" {
			lines = append(lines, f.Label()+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}
