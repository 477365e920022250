package catalog

// ServiceID identifies one offered service type. The set is fixed; form
// behavior (which optional detail fields are shown) is keyed off it.
type ServiceID string

const (
	InterlockInstallation ServiceID = "interlock-installation"
	PatioInstallation     ServiceID = "patio-installation"
	InterlockRepair       ServiceID = "interlock-repair"
	UnevenPaversLeveling  ServiceID = "uneven-pavers-leveling"
	PressureWashingResand ServiceID = "pressure-washing-resanding"
	PolymericSand         ServiceID = "polymeric-sand"
	TurfInstallation      ServiceID = "turf-installation"
)

// DetailField tags one optional quote-form detail field.
type DetailField string

const (
	FieldApproxSqFt      DetailField = "approx_sq_ft"
	FieldStylePreference DetailField = "style_preference"
	FieldTimeline        DetailField = "timeline"
	FieldBudgetRange     DetailField = "budget_range"
	FieldIssueType       DetailField = "issue_type"
	FieldApproxArea      DetailField = "approx_area"
	FieldUrgency         DetailField = "urgency"
	FieldLastServiceDate DetailField = "last_service_date"
	FieldWeedIssue       DetailField = "weed_issue"
	FieldPetFriendly     DetailField = "pet_friendly"
	FieldDrainageIssues  DetailField = "drainage_issues"
)

// detailFieldOrder fixes the presentation order of detail fields everywhere
// they are listed (form layout, assembled project-details text).
var detailFieldOrder = []DetailField{
	FieldApproxSqFt,
	FieldStylePreference,
	FieldTimeline,
	FieldBudgetRange,
	FieldIssueType,
	FieldApproxArea,
	FieldUrgency,
	FieldLastServiceDate,
	FieldWeedIssue,
	FieldPetFriendly,
	FieldDrainageIssues,
}

// AllDetailFields returns every detail field tag in presentation order.
func AllDetailFields() []DetailField {
	out := make([]DetailField, len(detailFieldOrder))
	copy(out, detailFieldOrder)
	return out
}

// Label returns the human-readable label used in emails and form copy.
func (f DetailField) Label() string {
	switch f {
	case FieldApproxSqFt:
		return "Approx sq ft"
	case FieldStylePreference:
		return "Style preference"
	case FieldTimeline:
		return "Timeline"
	case FieldBudgetRange:
		return "Budget range"
	case FieldIssueType:
		return "Issue type"
	case FieldApproxArea:
		return "Approx area"
	case FieldUrgency:
		return "Urgency"
	case FieldLastServiceDate:
		return "Last service date"
	case FieldWeedIssue:
		return "Weed issue"
	case FieldPetFriendly:
		return "Pet friendly"
	case FieldDrainageIssues:
		return "Drainage issues"
	default:
		return string(f)
	}
}

// FieldRules records which optional detail fields a service's quote form
// shows. The zero value hides everything.
type FieldRules struct {
	ShowApproxSqFt      bool
	ShowStylePreference bool
	ShowTimeline        bool
	ShowBudgetRange     bool
	ShowIssueType       bool
	ShowApproxArea      bool
	ShowUrgency         bool
	ShowLastServiceDate bool
	ShowWeedIssue       bool
	ShowPetFriendly     bool
	ShowDrainageIssues  bool
}

// Enabled reports whether a single detail field is visible under these rules.
func (r FieldRules) Enabled(f DetailField) bool {
	switch f {
	case FieldApproxSqFt:
		return r.ShowApproxSqFt
	case FieldStylePreference:
		return r.ShowStylePreference
	case FieldTimeline:
		return r.ShowTimeline
	case FieldBudgetRange:
		return r.ShowBudgetRange
	case FieldIssueType:
		return r.ShowIssueType
	case FieldApproxArea:
		return r.ShowApproxArea
	case FieldUrgency:
		return r.ShowUrgency
	case FieldLastServiceDate:
		return r.ShowLastServiceDate
	case FieldWeedIssue:
		return r.ShowWeedIssue
	case FieldPetFriendly:
		return r.ShowPetFriendly
	case FieldDrainageIssues:
		return r.ShowDrainageIssues
	default:
		return false
	}
}

// Visible returns the enabled detail fields in their fixed presentation order.
func (r FieldRules) Visible() []DetailField {
	var fields []DetailField
	for _, f := range detailFieldOrder {
		if r.Enabled(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// Service is one entry of the static service catalog. Loaded once, never mutated.
type Service struct {
	ID    ServiceID
	Name  string
	Short string
	Rules FieldRules
}

var services = []Service{
	{
		ID:    InterlockInstallation,
		Name:  "Interlock Installation",
		Short: "New driveways, walkways, and front entrances with a strong base and premium finish.",
		Rules: FieldRules{ShowApproxSqFt: true, ShowStylePreference: true, ShowTimeline: true, ShowBudgetRange: true},
	},
	{
		ID:    PatioInstallation,
		Name:  "Patio Installation",
		Short: "Backyard patios designed for hosting, lounging, and clean outdoor flow.",
		Rules: FieldRules{ShowApproxSqFt: true, ShowStylePreference: true, ShowTimeline: true, ShowBudgetRange: true},
	},
	{
		ID:    InterlockRepair,
		Name:  "Interlock Repair",
		Short: "Fix sunken areas, shifting borders, and loose pavers to restore a clean, safe surface.",
		Rules: FieldRules{ShowIssueType: true, ShowApproxArea: true, ShowUrgency: true},
	},
	{
		ID:    UnevenPaversLeveling,
		Name:  "Uneven Pavers Leveling",
		Short: "Lift and re-level uneven pavers to eliminate trip hazards and restore clean lines.",
		Rules: FieldRules{ShowIssueType: true, ShowApproxArea: true, ShowUrgency: true},
	},
	{
		ID:    PressureWashingResand,
		Name:  "Pressure Washing + Resanding",
		Short: "Deep clean interlock and refresh joints for a sharp, renewed look.",
		Rules: FieldRules{ShowApproxSqFt: true, ShowLastServiceDate: true, ShowWeedIssue: true},
	},
	{
		ID:    PolymericSand,
		Name:  "Polymeric Sand",
		Short: "Lock in joints, reduce weeds, and upgrade the look with polymeric sand finishing.",
		Rules: FieldRules{ShowApproxSqFt: true, ShowLastServiceDate: true, ShowWeedIssue: true},
	},
	{
		ID:    TurfInstallation,
		Name:  "Turf Installation",
		Short: "Low-maintenance, always-green turf with proper base prep and drainage.",
		Rules: FieldRules{ShowApproxSqFt: true, ShowPetFriendly: true, ShowDrainageIssues: true},
	},
}

var byID = func() map[ServiceID]Service {
	m := make(map[ServiceID]Service, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return m
}()

// ByID looks up a service by identifier.
func ByID(id ServiceID) (Service, bool) {
	s, ok := byID[id]
	return s, ok
}

// RulesFor returns the conditional-field rules for a service. Unknown
// identifiers get zero-value rules (every optional field hidden); this is the
// fallback policy, not an error.
func RulesFor(id ServiceID) FieldRules {
	return byID[id].Rules
}

// All returns the catalog in display order.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// DisplayName returns the human-friendly service name, falling back to the
// raw identifier for unknown services so emails never render blank.
func DisplayName(id ServiceID) string {
	if s, ok := byID[id]; ok {
		return s.Name
	}
	return string(id)
}
