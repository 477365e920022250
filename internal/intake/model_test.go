package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stoneworks/lead-intake/internal/catalog"
)

func TestNewFormStateDefaults(t *testing.T) {
	s := NewFormState(nil)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, catalog.InterlockInstallation, s.Service)
	assert.Equal(t, "Ottawa", s.City)
	assert.Equal(t, ContactCall, s.PreferredContact)
}

func TestNewFormStateSeeded(t *testing.T) {
	s := NewFormState(&Initial{Service: catalog.InterlockRepair, PostalCode: "k1k4w3"})
	assert.Equal(t, catalog.InterlockRepair, s.Service)
	assert.Equal(t, "K1K 4W3", s.PostalCode)
}

func TestNewFormStateRejectsUnknownSeedService(t *testing.T) {
	s := NewFormState(&Initial{Service: "snow-removal"})
	assert.Equal(t, catalog.InterlockInstallation, s.Service)
}

func TestSettersNormalizeOnEveryChange(t *testing.T) {
	s := NewFormState(nil)

	s.SetPostalCode("k1")
	assert.Equal(t, "K1", s.PostalCode)
	s.SetPostalCode("k1k4")
	assert.Equal(t, "K1K 4", s.PostalCode)
	s.SetPostalCode("k1k4w3")
	assert.Equal(t, "K1K 4W3", s.PostalCode)

	s.SetPhone("6138508158")
	assert.Equal(t, "(613) 850-8158", s.Phone)
}

func TestAdvanceStep1InvalidPostal(t *testing.T) {
	s := NewFormState(nil)
	s.SetPostalCode("123")

	ok := s.Advance()

	assert.False(t, ok)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, StatusError, s.Status)
	assert.Equal(t, msgPostalInvalid, s.Err)
}

func TestAdvanceStep1EmptyPostal(t *testing.T) {
	s := NewFormState(nil)

	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, msgPostalMissing, s.Err)
}

func TestAdvanceStep1Valid(t *testing.T) {
	s := NewFormState(nil)
	s.SetPostalCode("K1K 4W3")

	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Step)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Err)
}

func TestAdvanceStep2RequiresContactFields(t *testing.T) {
	s := NewFormState(nil)
	s.SetPostalCode("K1K 4W3")
	s.Advance()

	s.FullName = "Jordan Miller"
	s.SetPhone("6138508158")
	// email missing
	assert.False(t, s.Advance())
	assert.Equal(t, 2, s.Step)
	assert.Equal(t, msgContactMissing, s.Err)

	s.Email = "jordan@example.com"
	assert.True(t, s.Advance())
	assert.Equal(t, 3, s.Step)
}

func TestAdvanceStep2InvalidPhone(t *testing.T) {
	s := NewFormState(nil)
	s.SetPostalCode("K1K 4W3")
	s.Advance()

	s.FullName = "Jordan Miller"
	s.Phone = "12345" // bypass the setter to hold a raw invalid value
	s.Email = "jordan@example.com"

	assert.False(t, s.Advance())
	assert.Equal(t, 2, s.Step)
	assert.Equal(t, msgPhoneInvalid, s.Err)
}

func TestBackKeepsValues(t *testing.T) {
	s := NewFormState(nil)
	s.SetPostalCode("K1K 4W3")
	s.Advance()
	s.FullName = "Jordan Miller"

	s.Back()
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, "Jordan Miller", s.FullName)

	s.Back()
	assert.Equal(t, 1, s.Step)
}

func TestDetailsRetainedAcrossServiceSwitch(t *testing.T) {
	s := NewFormState(nil)
	s.Service = catalog.InterlockInstallation
	s.Details.ApproxSqFt = "350"
	s.Details.Timeline = "Next 2-4 weeks"

	s.Service = catalog.InterlockRepair
	assert.False(t, s.Rules().ShowApproxSqFt)
	assert.Equal(t, "350", s.Details.ApproxSqFt, "hidden values must be retained")

	s.Service = catalog.InterlockInstallation
	assert.True(t, s.Rules().ShowApproxSqFt)
	assert.Equal(t, "Next 2-4 weeks", s.Details.Timeline)
}

func TestAttachPhotosCaps(t *testing.T) {
	s := NewFormState(nil)

	small := func(name string) Photo {
		return Photo{Name: name, ContentType: "image/jpeg", Data: make([]byte, 64)}
	}

	// Oversized files are dropped without error.
	over := Photo{Name: "huge.jpg", Data: make([]byte, MaxPhotoBytes+1)}
	dropped := s.AttachPhotos([]Photo{small("a.jpg"), over, small("b.jpg")})
	assert.Equal(t, 1, dropped)
	assert.Len(t, s.Photos, 2)

	// More than MaxPhotos: excess silently dropped, order preserved.
	batch := []Photo{small("1"), small("2"), small("3"), small("4"), small("5"), small("6"), small("7")}
	dropped = s.AttachPhotos(batch)
	assert.Equal(t, 2, dropped)
	assert.Len(t, s.Photos, MaxPhotos)
	assert.Equal(t, "1", s.Photos[0].Name)
	assert.Equal(t, "5", s.Photos[4].Name)

	// Re-selection replaces, never appends past the cap.
	dropped = s.AttachPhotos([]Photo{small("solo.jpg")})
	assert.Zero(t, dropped)
	assert.Len(t, s.Photos, 1)
}

func TestDetailsValueCoversAllFields(t *testing.T) {
	d := Details{
		ApproxSqFt:      "350",
		StylePreference: "modern",
		Timeline:        "soon",
		BudgetRange:     "$5k-$10k",
		IssueType:       "sinking",
		ApproxArea:      "10x12",
		Urgency:         "ASAP",
		LastServiceDate: "Summer 2023",
		WeedIssue:       Yes,
		PetFriendly:     No,
		DrainageIssues:  Yes,
	}
	for _, f := range catalog.AllDetailFields() {
		assert.NotEmpty(t, d.Value(f), "field %s", f)
	}
	assert.Empty(t, d.Value("unknown_field"))
}
