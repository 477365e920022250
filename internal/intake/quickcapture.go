package intake

import (
	"net/url"
	"strings"

	"github.com/stoneworks/lead-intake/internal/catalog"
	"github.com/stoneworks/lead-intake/internal/validate"
)

// QuickCapture is the short form variant shown outside the contact page: a
// service picker plus postal code. It never reaches the contact or details
// steps itself; Continue hands off to the full form via query parameters.
type QuickCapture struct {
	Service    catalog.ServiceID
	PostalCode string
}

// NewQuickCapture starts a short-form session with the default service.
func NewQuickCapture() *QuickCapture {
	return &QuickCapture{Service: catalog.InterlockInstallation}
}

// SetPostalCode stores the normalized postal code on each input change.
func (q *QuickCapture) SetPostalCode(input string) {
	q.PostalCode = validate.NormalizePostalCode(input)
}

// ContinueURL returns the full-form URL carrying the selection. The postal
// parameter is included only when something was entered.
func (q *QuickCapture) ContinueURL(contactPath string) string {
	params := url.Values{}
	params.Set("service", string(q.Service))
	if postal := strings.TrimSpace(q.PostalCode); postal != "" {
		params.Set("postal", postal)
	}
	return contactPath + "?" + params.Encode()
}

// SeedFromQuery turns quick-capture query parameters back into initial
// full-form values. Unknown services are ignored; the postal code is seeded
// only once it amounts to a complete "AAA BBB" entry.
func SeedFromQuery(values url.Values) *Initial {
	initial := &Initial{}
	seeded := false

	if svc := catalog.ServiceID(values.Get("service")); svc != "" {
		if _, ok := catalog.ByID(svc); ok {
			initial.Service = svc
			seeded = true
		}
	}

	postal := validate.NormalizePostalCode(values.Get("postal"))
	if len(strings.ReplaceAll(postal, " ", "")) >= 6 {
		initial.PostalCode = postal
		seeded = true
	}

	if !seeded {
		return nil
	}
	return initial
}
