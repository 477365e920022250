package intake

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/stoneworks/lead-intake/internal/cooldown"
	"github.com/stoneworks/lead-intake/internal/validate"
	"github.com/stoneworks/lead-intake/pkg/logging"
)

// PhotoStore uploads attached photos and reports whether uploads are possible
// at all. "Not configured" is a normal state: the lead is still captured,
// just without photos.
type PhotoStore interface {
	Configured() bool
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// SaveResult is the persistence outcome. An unconfigured store returns
// OK=false with a reason code instead of an error.
type SaveResult struct {
	OK     bool
	ID     string
	Reason string
}

// LeadStore persists the lead payload. It is the source of truth for a
// submission: only a successful save counts as a captured lead.
type LeadStore interface {
	Save(ctx context.Context, payload *LeadPayload) (SaveResult, error)
}

// Notifier sends the new-lead notification. Callers ignore its failures.
type Notifier interface {
	Send(ctx context.Context, payload *LeadPayload) error
}

// Tracker records submission outcomes for analytics. Fire-and-forget; it must
// never block or fail the flow.
type Tracker interface {
	Track(event string, params map[string]string)
}

type noopTracker struct{}

func (noopTracker) Track(string, map[string]string) {}

// SubmitterConfig wires the submit pipeline's collaborators. Photos,
// Notifier, Tracker and Cooldown are optional; Leads is required.
type SubmitterConfig struct {
	Photos   PhotoStore
	Leads    LeadStore
	Notifier Notifier
	Tracker  Tracker
	Cooldown *cooldown.Guard
	Clock    cooldown.Clock
	Logger   *logging.Logger
}

// Submitter runs the terminal submit sequence of the quote form.
type Submitter struct {
	photos   PhotoStore
	leads    LeadStore
	notifier Notifier
	tracker  Tracker
	guard    *cooldown.Guard
	clock    cooldown.Clock
	logger   *logging.Logger
}

// NewSubmitter builds a Submitter from its collaborators.
func NewSubmitter(cfg SubmitterConfig) *Submitter {
	if cfg.Leads == nil {
		panic("intake: lead store required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Tracker == nil {
		cfg.Tracker = noopTracker{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Submitter{
		photos:   cfg.Photos,
		leads:    cfg.Leads,
		notifier: cfg.Notifier,
		tracker:  cfg.Tracker,
		guard:    cfg.Cooldown,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
}

var requiredFields = validator.New()

// requiredContact re-checks the fields every submission needs, even though
// the per-step gates already verified them: the quick-capture redirect can
// seed a form past step 1, and nothing stops a caller from mutating state
// between steps.
type requiredContact struct {
	FullName   string `validate:"required"`
	Phone      string `validate:"required"`
	Email      string `validate:"required"`
	PostalCode string `validate:"required"`
	City       string `validate:"required"`
}

// Submit runs the guarded submit sequence: spam/honeypot short-circuit,
// cooldown check, full re-validation, then sequential photo upload, payload
// assembly, persistence, and best-effort notification. The cooldown is armed
// only after a genuinely persisted submission.
func (sub *Submitter) Submit(ctx context.Context, s *FormState) {
	s.Err = ""

	// Bots fill the hidden field; answer with a fake success and do nothing.
	if strings.TrimSpace(s.Honeypot) != "" {
		s.Status = StatusSent
		return
	}

	if remaining := sub.guard.Remaining(ctx); remaining > 0 {
		secs := int(math.Ceil(remaining.Seconds()))
		s.fail(fmt.Sprintf("Please wait %ds before submitting again.", secs))
		sub.tracker.Track("quote_error", map[string]string{"reason": "cooldown"})
		return
	}

	if !validate.IsValidPostalCode(s.PostalCode) {
		s.fail(msgPostalInvalid)
		return
	}
	if !validate.IsValidPhone(s.Phone) {
		s.fail(msgPhoneInvalid)
		return
	}
	if err := requiredFields.Struct(requiredContact{
		FullName:   strings.TrimSpace(s.FullName),
		Phone:      strings.TrimSpace(s.Phone),
		Email:      strings.TrimSpace(s.Email),
		PostalCode: strings.TrimSpace(s.PostalCode),
		City:       strings.TrimSpace(s.City),
	}); err != nil {
		s.fail(msgRequiredMissing)
		return
	}
	if !validate.IsValidEmail(s.Email) {
		s.fail(msgEmailInvalid)
		return
	}

	s.Status = StatusSending

	// Uploads run before payload assembly because the payload carries the
	// resulting URLs. One file at a time; submission volume doesn't justify
	// concurrent uploads.
	photoURLs, err := sub.uploadPhotos(ctx, s.Photos)
	if err != nil {
		sub.logger.Error("lead photo upload failed", "error", err)
		sub.genericFail(s, "upload")
		return
	}

	payload := BuildPayload(s, photoURLs, sub.clock())

	result, err := sub.leads.Save(ctx, payload)
	if err != nil || !result.OK {
		reason := result.Reason
		if err != nil {
			reason = err.Error()
		}
		sub.logger.Error("lead persistence failed", "reason", reason)
		// No cooldown on failure: the user may retry immediately.
		sub.genericFail(s, "persistence")
		return
	}

	// Best-effort notification. The lead is already durably recorded, so a
	// send failure is logged and otherwise discarded on purpose; it must not
	// downgrade the success the user sees.
	if sub.notifier != nil {
		if err := sub.notifier.Send(ctx, payload); err != nil {
			sub.logger.Warn("lead notification failed", "error", err, "lead_id", result.ID)
		}
	}

	sub.guard.Arm(ctx)
	s.Status = StatusSent
	sub.tracker.Track("quote_submitted", map[string]string{
		"service": string(s.Service),
		"photos":  strconv.Itoa(len(photoURLs)),
	})
}

func (sub *Submitter) uploadPhotos(ctx context.Context, photos []Photo) ([]string, error) {
	if len(photos) == 0 || sub.photos == nil || !sub.photos.Configured() {
		return nil, nil
	}

	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		url, err := sub.photos.Upload(ctx, p.Name, p.ContentType, p.Data)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (sub *Submitter) genericFail(s *FormState, stage string) {
	s.fail(msgGenericFailure)
	sub.tracker.Track("quote_error", map[string]string{"reason": stage})
}
