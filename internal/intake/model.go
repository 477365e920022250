// Package intake drives the multi-step quote form: per-keystroke
// normalization, step gating, and the submit pipeline that turns a completed
// form into a persisted lead.
package intake

import (
	"strings"

	"github.com/stoneworks/lead-intake/internal/catalog"
	"github.com/stoneworks/lead-intake/internal/validate"
)

// Status tracks the submission lifecycle of a form session.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusError   Status = "error"
)

// ContactMethod is the caller's preferred way to be reached.
type ContactMethod string

const (
	ContactCall  ContactMethod = "call"
	ContactText  ContactMethod = "text"
	ContactEmail ContactMethod = "email"
)

// YesNo is a tri-state select value; empty means unanswered.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// Photo attachment caps. Files over these limits are dropped at attach time.
const (
	MaxPhotos     = 5
	MaxPhotoBytes = 6 * 1024 * 1024
)

// Photo is one attached image blob.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// Details holds the optional per-service fields. Every field is retained in
// state even while hidden, so switching service mid-form does not discard
// previously entered values.
type Details struct {
	ApproxSqFt      string
	StylePreference string
	Timeline        string
	BudgetRange     string
	IssueType       string
	ApproxArea      string
	Urgency         string
	LastServiceDate string
	WeedIssue       YesNo
	PetFriendly     YesNo
	DrainageIssues  YesNo
}

// Value returns the entered text for a detail field tag.
func (d Details) Value(f catalog.DetailField) string {
	switch f {
	case catalog.FieldApproxSqFt:
		return d.ApproxSqFt
	case catalog.FieldStylePreference:
		return d.StylePreference
	case catalog.FieldTimeline:
		return d.Timeline
	case catalog.FieldBudgetRange:
		return d.BudgetRange
	case catalog.FieldIssueType:
		return d.IssueType
	case catalog.FieldApproxArea:
		return d.ApproxArea
	case catalog.FieldUrgency:
		return d.Urgency
	case catalog.FieldLastServiceDate:
		return d.LastServiceDate
	case catalog.FieldWeedIssue:
		return string(d.WeedIssue)
	case catalog.FieldPetFriendly:
		return string(d.PetFriendly)
	case catalog.FieldDrainageIssues:
		return string(d.DrainageIssues)
	default:
		return ""
	}
}

// FormState is the mutable state of one full-intake form session. One
// instance per page view; not safe for concurrent use and not meant to be.
type FormState struct {
	Step   int // 1 service+postal, 2 contact, 3 details
	Status Status
	Err    string // user-facing error copy, set whenever Status is StatusError

	Service          catalog.ServiceID
	FullName         string
	Phone            string
	Email            string
	PostalCode       string
	City             string
	Address          string
	PreferredContact ContactMethod
	Message          string

	Details Details
	Photos  []Photo

	// Honeypot must stay empty; bots that fill it get a fake success.
	Honeypot string
}

// Initial seeds a form from query-string-derived values (the quick-capture
// redirect path).
type Initial struct {
	Service    catalog.ServiceID
	PostalCode string
}

// NewFormState creates a form session with the site defaults.
func NewFormState(initial *Initial) *FormState {
	s := &FormState{
		Step:             1,
		Status:           StatusIdle,
		Service:          catalog.InterlockInstallation,
		City:             "Ottawa",
		PreferredContact: ContactCall,
	}
	if initial != nil {
		if _, ok := catalog.ByID(initial.Service); ok {
			s.Service = initial.Service
		}
		if initial.PostalCode != "" {
			s.PostalCode = validate.NormalizePostalCode(initial.PostalCode)
		}
	}
	return s
}

// Rules returns the conditional-field rules for the currently selected service.
func (s *FormState) Rules() catalog.FieldRules {
	return catalog.RulesFor(s.Service)
}

// SetPostalCode stores the normalized postal code. Applied on every input
// change so state never holds an unnormalized value.
func (s *FormState) SetPostalCode(input string) {
	s.PostalCode = validate.NormalizePostalCode(input)
}

// SetPhone stores the normalized phone number on every input change.
func (s *FormState) SetPhone(input string) {
	s.Phone = validate.NormalizePhone(input)
}

// AttachPhotos replaces the attachment list with the selection, silently
// dropping files over MaxPhotoBytes and anything past MaxPhotos. The number
// of dropped files is returned so a caller can surface a warning if it wants
// to; the form itself stays quiet, matching the site's behavior.
func (s *FormState) AttachPhotos(photos []Photo) (dropped int) {
	kept := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if int64(len(p.Data)) > MaxPhotoBytes {
			continue
		}
		if len(kept) == MaxPhotos {
			break
		}
		kept = append(kept, p)
	}
	s.Photos = kept
	return len(photos) - len(kept)
}

// Advance moves to the next step when the current step's required fields
// validate; otherwise it sets an error and stays put.
func (s *FormState) Advance() bool {
	switch s.Step {
	case 1:
		if strings.TrimSpace(s.PostalCode) == "" {
			s.fail(msgPostalMissing)
			return false
		}
		if !validate.IsValidPostalCode(s.PostalCode) {
			s.fail(msgPostalInvalid)
			return false
		}
	case 2:
		if strings.TrimSpace(s.FullName) == "" || strings.TrimSpace(s.Phone) == "" ||
			strings.TrimSpace(s.Email) == "" || strings.TrimSpace(s.City) == "" {
			s.fail(msgContactMissing)
			return false
		}
		if !validate.IsValidPhone(s.Phone) {
			s.fail(msgPhoneInvalid)
			return false
		}
	default:
		return false
	}

	s.Status = StatusIdle
	s.Err = ""
	s.Step++
	return true
}

// Back returns to the previous step. Entered values are kept.
func (s *FormState) Back() {
	if s.Step > 1 {
		s.Step--
	}
}

func (s *FormState) fail(msg string) {
	s.Status = StatusError
	s.Err = msg
}
