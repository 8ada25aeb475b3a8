// Package intake defines the request and response shapes shared by the HTTP
// handlers and the orchestrating services.
package intake

// ContactRequest is the POST /contact body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a contact submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EventRegistrationRequest is the POST /events/register body. Amount, when
// set, overrides the catalog price (major currency units).
type EventRegistrationRequest struct {
	EventID        int    `json:"eventId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	BusinessName   string `json:"businessName,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
	Amount         int64  `json:"amount,omitempty"`
	Currency       string `json:"currency,omitempty"`
}

// RegistrationResponse is shared by event and webinar registration. PaymentURL
// and PaymentReference are present only when a hosted payment page was opened.
type RegistrationResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	RegistrationID   string `json:"registrationId,omitempty"`
	PaymentURL       string `json:"paymentUrl,omitempty"`
	PaymentReference string `json:"paymentReference,omitempty"`
}

// PaymentVerificationRequest is the POST /events/verify-payment and
// /webinar/verify-payment body.
type PaymentVerificationRequest struct {
	Reference string `json:"reference"`
}

// PaymentVerificationResponse reports the gateway's final word on a
// transaction. Amount is in major currency units.
type PaymentVerificationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"` // success | failed | pending
	Amount  int64  `json:"amount,omitempty"`
}

// WebinarRegistrationRequest is the POST /webinar/register body.
type WebinarRegistrationRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Questions    string `json:"questions,omitempty"`
}

// ServiceInquiryRequest is the POST /services/inquiry body.
type ServiceInquiryRequest struct {
	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	BusinessName    string `json:"businessName,omitempty"`
	Message         string `json:"message,omitempty"`
}

// ServiceInquiryResponse acknowledges a service inquiry.
type ServiceInquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BusinessClubRegistrationRequest is the POST /business-club/register body.
type BusinessClubRegistrationRequest struct {
	FullName          string   `json:"fullName"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	BusinessName      string   `json:"businessName"`
	BusinessType      string   `json:"businessType"`
	BusinessLocation  string   `json:"businessLocation"`
	YearsInBusiness   string   `json:"yearsInBusiness"`
	NumberOfEmployees string   `json:"numberOfEmployees"`
	BusinessRealities []string `json:"businessRealities"`
	Expectations      string   `json:"expectations"`
	FocusAreas        []string `json:"focusAreas"`
	HowDidYouHear     string   `json:"howDidYouHear"`
}

// BusinessClubRegistrationResponse acknowledges a questionnaire submission.
type BusinessClubRegistrationResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId,omitempty"`
}
