// Package validate implements the per-domain field checks applied before any
// side effect. Rules run in declared order and stop at the first violation so
// every rejection names exactly one actionable problem.
package validate

import (
	"regexp"
	"slices"

	"leadgate/internal/domain"
	"leadgate/internal/intake"
)

// emailPattern is the intake-boundary email shape check: a local part, an @,
// and a dot somewhere in the domain. Deliverability is the mail provider's
// problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Violation describes the first rule a payload broke.
type Violation struct {
	Field   string
	Message string
}

type kind int

const (
	required kind = iota
	email
	nonEmptyList
	oneOf
	eachOneOf
)

// rule is one ordered check. value carries the field's current value; label is
// the human name used in multi-select messages.
type rule struct {
	field   string
	label   string
	kind    kind
	value   any
	allowed []string
}

func req(field string, value string) rule {
	return rule{field: field, kind: required, value: value}
}

func reqList(field string, value []string) rule {
	return rule{field: field, kind: required, value: value}
}

func emailRule(field string, value string) rule {
	return rule{field: field, kind: email, value: value}
}

func selected(field, label string, value []string) rule {
	return rule{field: field, label: label, kind: nonEmptyList, value: value}
}

func vocab(field string, value string, allowed []string) rule {
	return rule{field: field, kind: oneOf, value: value, allowed: allowed}
}

func vocabList(field string, value []string, allowed []string) rule {
	return rule{field: field, kind: eachOneOf, value: value, allowed: allowed}
}

// apply runs rules in order and returns the first violation, or nil.
func apply(rules []rule) *Violation {
	for _, r := range rules {
		if v := r.check(); v != nil {
			return v
		}
	}
	return nil
}

func (r rule) check() *Violation {
	switch r.kind {
	case required:
		switch val := r.value.(type) {
		case string:
			if val == "" {
				return &Violation{Field: r.field, Message: "Missing required field: " + r.field}
			}
		case []string:
			// A present-but-empty selection is caught by the dedicated
			// non-empty rule with a clearer message.
			if val == nil {
				return &Violation{Field: r.field, Message: "Missing required field: " + r.field}
			}
		}
	case email:
		if s, ok := r.value.(string); ok && !emailPattern.MatchString(s) {
			return &Violation{Field: r.field, Message: "Invalid email format"}
		}
	case nonEmptyList:
		if vals, ok := r.value.([]string); ok && len(vals) == 0 {
			return &Violation{Field: r.field, Message: r.label + " must be selected"}
		}
	case oneOf:
		if s, ok := r.value.(string); ok && !slices.Contains(r.allowed, s) {
			return &Violation{Field: r.field, Message: "Invalid value for field: " + r.field}
		}
	case eachOneOf:
		if vals, ok := r.value.([]string); ok {
			for _, s := range vals {
				if !slices.Contains(r.allowed, s) {
					return &Violation{Field: r.field, Message: "Invalid value for field: " + r.field}
				}
			}
		}
	}
	return nil
}

// Contact validates a contact form payload.
func Contact(r intake.ContactRequest) *Violation {
	return apply([]rule{
		req("name", r.Name),
		req("email", r.Email),
		req("subject", r.Subject),
		req("message", r.Message),
		emailRule("email", r.Email),
	})
}

// EventRegistration validates an event registration payload. Catalog
// existence of the event is the orchestrator's concern.
func EventRegistration(r intake.EventRegistrationRequest) *Violation {
	if r.EventID == 0 {
		return &Violation{Field: "eventId", Message: "Missing required field: eventId"}
	}
	return apply([]rule{
		req("name", r.Name),
		req("email", r.Email),
		emailRule("email", r.Email),
	})
}

// WebinarRegistration validates a webinar signup payload.
func WebinarRegistration(r intake.WebinarRegistrationRequest) *Violation {
	return apply([]rule{
		req("name", r.Name),
		req("businessName", r.BusinessName),
		req("phone", r.Phone),
		req("email", r.Email),
		emailRule("email", r.Email),
	})
}

// ServiceInquiry validates a service inquiry payload.
func ServiceInquiry(r intake.ServiceInquiryRequest) *Violation {
	return apply([]rule{
		req("serviceName", r.ServiceName),
		req("name", r.Name),
		req("email", r.Email),
		emailRule("email", r.Email),
	})
}

// BusinessClubRegistration validates the membership questionnaire, including
// the closed vocabularies for its single- and multi-select fields.
func BusinessClubRegistration(r intake.BusinessClubRegistrationRequest) *Violation {
	return apply([]rule{
		req("fullName", r.FullName),
		req("phone", r.Phone),
		req("email", r.Email),
		req("businessName", r.BusinessName),
		req("businessType", r.BusinessType),
		req("businessLocation", r.BusinessLocation),
		req("yearsInBusiness", r.YearsInBusiness),
		req("numberOfEmployees", r.NumberOfEmployees),
		reqList("businessRealities", r.BusinessRealities),
		req("expectations", r.Expectations),
		reqList("focusAreas", r.FocusAreas),
		req("howDidYouHear", r.HowDidYouHear),
		selected("businessRealities", "Business realities", r.BusinessRealities),
		selected("focusAreas", "Focus areas", r.FocusAreas),
		emailRule("email", r.Email),
		vocab("businessType", r.BusinessType, domain.BusinessTypes),
		vocab("yearsInBusiness", r.YearsInBusiness, domain.YearsInBusinessOptions),
		vocab("numberOfEmployees", r.NumberOfEmployees, domain.NumberOfEmployeesOptions),
		vocabList("businessRealities", r.BusinessRealities, domain.BusinessRealityOptions),
		vocabList("focusAreas", r.FocusAreas, domain.FocusAreaOptions),
		vocab("howDidYouHear", r.HowDidYouHear, domain.HowDidYouHearOptions),
	})
}
