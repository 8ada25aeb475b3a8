package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadgate/internal/intake"
)

func validBusinessClub() intake.BusinessClubRegistrationRequest {
	return intake.BusinessClubRegistrationRequest{
		FullName:          "Amara Okafor",
		Phone:             "+254712345678",
		Email:             "amara@example.com",
		BusinessName:      "Glow Spa",
		BusinessType:      "Spa",
		BusinessLocation:  "Nairobi",
		YearsInBusiness:   "1 – 3 years",
		NumberOfEmployees: "2 – 3",
		BusinessRealities: []string{"I struggle with pricing"},
		Expectations:      "Grow revenue",
		FocusAreas:        []string{"Pricing & profitability"},
		HowDidYouHear:     "Instagram",
	}
}

func TestContact(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*intake.ContactRequest)
		wantMsg string
	}{
		{"valid", func(r *intake.ContactRequest) {}, ""},
		{"missing name", func(r *intake.ContactRequest) { r.Name = "" }, "Missing required field: name"},
		{"missing email", func(r *intake.ContactRequest) { r.Email = "" }, "Missing required field: email"},
		{"missing subject", func(r *intake.ContactRequest) { r.Subject = "" }, "Missing required field: subject"},
		{"missing message", func(r *intake.ContactRequest) { r.Message = "" }, "Missing required field: message"},
		{"bad email", func(r *intake.ContactRequest) { r.Email = "not-an-email" }, "Invalid email format"},
		{"email without dot", func(r *intake.ContactRequest) { r.Email = "a@b" }, "Invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := intake.ContactRequest{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
			tc.mutate(&req)
			v := Contact(req)
			if tc.wantMsg == "" {
				assert.Nil(t, v)
			} else {
				require.NotNil(t, v)
				assert.Equal(t, tc.wantMsg, v.Message)
			}
		})
	}
}

// TestContactOrdering: with several required fields absent, the reported
// violation names the first in declared order, stable across calls.
func TestContactOrdering(t *testing.T) {
	req := intake.ContactRequest{Phone: "+254700000000"}
	for range 10 {
		v := Contact(req)
		require.NotNil(t, v)
		assert.Equal(t, "name", v.Field)
		assert.Equal(t, "Missing required field: name", v.Message)
	}
}

func TestEventRegistration(t *testing.T) {
	valid := intake.EventRegistrationRequest{EventID: 1, Name: "Jane", Email: "jane@example.com"}

	assert.Nil(t, EventRegistration(valid))

	missingID := valid
	missingID.EventID = 0
	v := EventRegistration(missingID)
	require.NotNil(t, v)
	assert.Equal(t, "Missing required field: eventId", v.Message)

	badEmail := valid
	badEmail.Email = "jane@nodot"
	v = EventRegistration(badEmail)
	require.NotNil(t, v)
	assert.Equal(t, "Invalid email format", v.Message)
}

func TestWebinarRegistration(t *testing.T) {
	valid := intake.WebinarRegistrationRequest{
		Name: "Jane", BusinessName: "Glow Spa", Phone: "+254712345678", Email: "jane@example.com",
	}
	assert.Nil(t, WebinarRegistration(valid))

	missing := valid
	missing.BusinessName = ""
	v := WebinarRegistration(missing)
	require.NotNil(t, v)
	assert.Equal(t, "Missing required field: businessName", v.Message)
}

func TestServiceInquiry(t *testing.T) {
	valid := intake.ServiceInquiryRequest{ServiceName: "Branding", Name: "Jane", Email: "jane@example.com"}
	assert.Nil(t, ServiceInquiry(valid))

	v := ServiceInquiry(intake.ServiceInquiryRequest{Name: "Jane", Email: "jane@example.com"})
	require.NotNil(t, v)
	assert.Equal(t, "Missing required field: serviceName", v.Message)
}

func TestBusinessClubRegistration(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*intake.BusinessClubRegistrationRequest)
		wantMsg string
	}{
		{"valid", func(r *intake.BusinessClubRegistrationRequest) {}, ""},
		{"missing email", func(r *intake.BusinessClubRegistrationRequest) { r.Email = "" }, "Missing required field: email"},
		{"missing realities", func(r *intake.BusinessClubRegistrationRequest) { r.BusinessRealities = nil }, "Missing required field: businessRealities"},
		{"empty realities", func(r *intake.BusinessClubRegistrationRequest) { r.BusinessRealities = []string{} }, "Business realities must be selected"},
		{"empty focus areas", func(r *intake.BusinessClubRegistrationRequest) { r.FocusAreas = []string{} }, "Focus areas must be selected"},
		{"unknown business type", func(r *intake.BusinessClubRegistrationRequest) { r.BusinessType = "Gym" }, "Invalid value for field: businessType"},
		{"unknown years bracket", func(r *intake.BusinessClubRegistrationRequest) { r.YearsInBusiness = "forever" }, "Invalid value for field: yearsInBusiness"},
		{"unknown reality", func(r *intake.BusinessClubRegistrationRequest) {
			r.BusinessRealities = []string{"Something else entirely"}
		}, "Invalid value for field: businessRealities"},
		{"unknown focus area", func(r *intake.BusinessClubRegistrationRequest) {
			r.FocusAreas = []string{"Pricing & profitability", "Astrology"}
		}, "Invalid value for field: focusAreas"},
		{"unknown referral source", func(r *intake.BusinessClubRegistrationRequest) { r.HowDidYouHear = "Carrier pigeon" }, "Invalid value for field: howDidYouHear"},
		{"bad email", func(r *intake.BusinessClubRegistrationRequest) { r.Email = "amara@@example.com" }, "Invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBusinessClub()
			tc.mutate(&req)
			v := BusinessClubRegistration(req)
			if tc.wantMsg == "" {
				assert.Nil(t, v)
			} else {
				require.NotNil(t, v)
				assert.Equal(t, tc.wantMsg, v.Message)
			}
		})
	}
}

// TestBusinessClubOrdering drops two fields and expects the earlier one in
// the questionnaire's declared order to be reported.
func TestBusinessClubOrdering(t *testing.T) {
	req := validBusinessClub()
	req.Phone = ""
	req.HowDidYouHear = ""
	v := BusinessClubRegistration(req)
	require.NotNil(t, v)
	assert.Equal(t, "phone", v.Field)
}
