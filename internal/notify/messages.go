package notify

import (
	"fmt"
	"strings"

	"leadgate/internal/catalog"
	"leadgate/internal/domain"
)

const signature = "Best regards,\nThe Spa & Salon Africa Team"

func htmlSignature() string {
	return "<p>Best regards,<br>The Spa & Salon Africa Team</p>"
}

func optionalRow(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, value)
}

func optionalLine(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", label, value)
}

// ContactConfirmation thanks the submitter for reaching out.
func ContactConfirmation(c *domain.Contact) Email {
	return Email{
		To:      []Recipient{{Email: c.Email, Name: c.Name}},
		Subject: "Thank you for contacting Spa & Salon Africa",
		HTMLContent: fmt.Sprintf(`<h2>Thank you for reaching out, %s!</h2>
<p>We've received your message and will get back to you within 24-48 hours.</p>
<p>Our team is committed to helping beauty business owners across Africa grow and succeed.</p>
%s`, c.Name, htmlSignature()),
		TextContent: fmt.Sprintf(`Thank you for reaching out, %s!

We've received your message and will get back to you within 24-48 hours.

Our team is committed to helping beauty business owners across Africa grow and succeed.

%s`, c.Name, signature),
	}
}

// ContactNotification tells the operator a contact form arrived.
func ContactNotification(operatorEmail string, c *domain.Contact) Email {
	return Email{
		To:      []Recipient{{Email: operatorEmail}},
		Subject: "New Contact Form Submission: " + c.Subject,
		HTMLContent: fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
%s<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, c.Name, c.Email, optionalRow("Phone", c.Phone), c.Subject,
			strings.ReplaceAll(c.Message, "\n", "<br>")),
		TextContent: fmt.Sprintf(`New Contact Form Submission
Name: %s
Email: %s
%sSubject: %s
Message: %s`, c.Name, c.Email, optionalLine("Phone", c.Phone), c.Subject, c.Message),
	}
}

// EventConfirmation confirms an event registration to the attendee. When the
// registration is already paid the message carries a payment-confirmed badge.
func EventConfirmation(r *domain.EventRegistration, ev catalog.Event) Email {
	paidHTML := ""
	paidText := ""
	if r.PaymentState == domain.PaymentPaid {
		paidHTML = "<p style='color: green;'><strong>✓ Payment Confirmed</strong></p>"
		paidText = "✓ Payment Confirmed\n"
	}
	return Email{
		To:      []Recipient{{Email: r.Email, Name: r.Name}},
		Subject: "Event Registration Confirmed: " + ev.Title,
		HTMLContent: fmt.Sprintf(`<h2>Registration Confirmed!</h2>
<p>Hi %s,</p>
<p>Your registration for <strong>%s</strong> has been confirmed.</p>
<div style="background: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px;">
<p><strong>Event Details:</strong></p>
<p>Date: %s</p>
<p>Time: %s</p>
<p>Location: %s</p>
<p>Registration ID: %s</p>
%s</div>
<p>We look forward to seeing you at the event!</p>
%s`, r.Name, ev.Title, ev.Date, ev.Time, ev.Location, r.ID, paidHTML, htmlSignature()),
		TextContent: fmt.Sprintf(`Registration Confirmed!

Hi %s,

Your registration for %s has been confirmed.

Event Details:
Date: %s
Time: %s
Location: %s
Registration ID: %s
%s
We look forward to seeing you at the event!

%s`, r.Name, ev.Title, ev.Date, ev.Time, ev.Location, r.ID, paidText, signature),
	}
}

// EventNotification tells the operator about a new event registration.
func EventNotification(operatorEmail string, r *domain.EventRegistration, ev catalog.Event) Email {
	return Email{
		To:      []Recipient{{Email: operatorEmail}},
		Subject: "New Event Registration: " + ev.Title,
		HTMLContent: fmt.Sprintf(`<h2>New Event Registration</h2>
<p><strong>Event:</strong> %s</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
%s%s<p><strong>Registration ID:</strong> %s</p>`,
			ev.Title, r.Name, r.Email, optionalRow("Phone", r.Phone),
			optionalRow("Business", r.BusinessName), r.ID),
		TextContent: fmt.Sprintf(`New Event Registration
Event: %s
Name: %s
Email: %s
%s%sRegistration ID: %s`,
			ev.Title, r.Name, r.Email, optionalLine("Phone", r.Phone),
			optionalLine("Business", r.BusinessName), r.ID),
	}
}

// EventRegistrationSMS is the short confirmation text for attendees with a
// phone number on file.
func EventRegistrationSMS(r *domain.EventRegistration, ev catalog.Event) SMS {
	return SMS{
		Recipient: r.Phone,
		Message: fmt.Sprintf(
			`Hi %s, your registration for "%s" on %s is confirmed. Registration ID: %s. See you there! - Spa & Salon Africa`,
			r.Name, ev.Title, ev.Date, r.ID),
	}
}

// WebinarConfirmation confirms a webinar signup to the attendee.
func WebinarConfirmation(r *domain.WebinarRegistration) Email {
	return Email{
		To:      []Recipient{{Email: r.Email, Name: r.Name}},
		Subject: "Webinar Registration Received - Complete Your Payment",
		HTMLContent: fmt.Sprintf(`<h2>Thank you for registering, %s!</h2>
<p>We've received your webinar registration for <strong>%s</strong>.</p>
<p>Please complete your payment to secure your spot.</p>
<p>Registration ID: %s</p>
%s`, r.Name, r.BusinessName, r.ID, htmlSignature()),
		TextContent: fmt.Sprintf(`Thank you for registering, %s!

We've received your webinar registration for %s.

Please complete your payment to secure your spot.

Registration ID: %s

%s`, r.Name, r.BusinessName, r.ID, signature),
	}
}

// WebinarNotification tells the operator about a new webinar signup.
func WebinarNotification(operatorEmail string, r *domain.WebinarRegistration) Email {
	return Email{
		To:      []Recipient{{Email: operatorEmail}},
		Subject: "New Webinar Registration: " + r.BusinessName,
		HTMLContent: fmt.Sprintf(`<h2>New Webinar Registration</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Business:</strong> %s</p>
%s<p><strong>Registration ID:</strong> %s</p>`,
			r.Name, r.Email, r.Phone, r.BusinessName,
			optionalRow("Questions", r.Questions), r.ID),
		TextContent: fmt.Sprintf(`New Webinar Registration
Name: %s
Email: %s
Phone: %s
Business: %s
%sRegistration ID: %s`,
			r.Name, r.Email, r.Phone, r.BusinessName,
			optionalLine("Questions", r.Questions), r.ID),
	}
}

// WebinarPaymentConfirmation confirms a verified webinar payment.
func WebinarPaymentConfirmation(r *domain.WebinarRegistration, amount int64) Email {
	return Email{
		To:      []Recipient{{Email: r.Email, Name: r.Name}},
		Subject: "Payment Confirmed - Your Webinar Spot Is Secured",
		HTMLContent: fmt.Sprintf(`<h2>Payment Confirmed!</h2>
<p>Hi %s,</p>
<p>Your payment of KES %d for the webinar has been confirmed.</p>
<p>Registration ID: %s</p>
<p>We'll send joining details to this address before the session.</p>
%s`, r.Name, amount, r.ID, htmlSignature()),
		TextContent: fmt.Sprintf(`Payment Confirmed!

Hi %s,

Your payment of KES %d for the webinar has been confirmed.

Registration ID: %s

We'll send joining details to this address before the session.

%s`, r.Name, amount, r.ID, signature),
	}
}

// BusinessClubConfirmation thanks the applicant for applying.
func BusinessClubConfirmation(r *domain.BusinessClubRegistration) Email {
	return Email{
		To:      []Recipient{{Email: r.Email, Name: r.FullName}},
		Subject: "Business Club Application Received",
		HTMLContent: fmt.Sprintf(`<h2>Thank you for applying, %s!</h2>
<p>We've received your application for <strong>%s</strong>.</p>
<p>Our team will review your information and get back to you shortly.</p>
<p>Application ID: %s</p>
%s`, r.FullName, r.BusinessName, r.ID, htmlSignature()),
		TextContent: fmt.Sprintf(`Thank you for applying, %s!

We've received your application for %s.

Our team will review your information and get back to you shortly.

Application ID: %s

%s`, r.FullName, r.BusinessName, r.ID, signature),
	}
}

// BusinessClubNotification tells the operator a new application arrived.
func BusinessClubNotification(operatorEmail string, r *domain.BusinessClubRegistration) Email {
	return Email{
		To:      []Recipient{{Email: operatorEmail}},
		Subject: "New Business Club Application: " + r.BusinessName,
		HTMLContent: fmt.Sprintf(`<h2>New Business Club Application</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Business:</strong> %s (%s)</p>
<p><strong>Location:</strong> %s</p>
<p><strong>Years in Business:</strong> %s</p>
<p><strong>Employees:</strong> %s</p>
<p><strong>Business Realities:</strong> %s</p>
<p><strong>Focus Areas:</strong> %s</p>
<p><strong>Expectations:</strong> %s</p>
<p><strong>How They Heard:</strong> %s</p>
<p><strong>Application ID:</strong> %s</p>`,
			r.FullName, r.Email, r.Phone, r.BusinessName, r.BusinessType,
			r.BusinessLocation, r.YearsInBusiness, r.NumberOfEmployees,
			strings.Join(r.BusinessRealities, ", "), strings.Join(r.FocusAreas, ", "),
			r.Expectations, r.HowDidYouHear, r.ID),
		TextContent: fmt.Sprintf(`New Business Club Application
Name: %s
Email: %s
Phone: %s
Business: %s (%s)
Location: %s
Years in Business: %s
Employees: %s
Business Realities: %s
Focus Areas: %s
Expectations: %s
How They Heard: %s
Application ID: %s`,
			r.FullName, r.Email, r.Phone, r.BusinessName, r.BusinessType,
			r.BusinessLocation, r.YearsInBusiness, r.NumberOfEmployees,
			strings.Join(r.BusinessRealities, ", "), strings.Join(r.FocusAreas, ", "),
			r.Expectations, r.HowDidYouHear, r.ID),
	}
}

// ServiceInquiryConfirmation thanks the prospect for their interest.
func ServiceInquiryConfirmation(inq *domain.ServiceInquiry) Email {
	return Email{
		To:      []Recipient{{Email: inq.Email, Name: inq.Name}},
		Subject: "We've received your inquiry: " + inq.ServiceName,
		HTMLContent: fmt.Sprintf(`<h2>Thank you for your interest, %s!</h2>
<p>We've received your inquiry about <strong>%s</strong>.</p>
<p>Our team will contact you within 24 hours.</p>
%s`, inq.Name, inq.ServiceName, htmlSignature()),
		TextContent: fmt.Sprintf(`Thank you for your interest, %s!

We've received your inquiry about %s.

Our team will contact you within 24 hours.

%s`, inq.Name, inq.ServiceName, signature),
	}
}

// ServiceInquiryNotification tells the operator a new inquiry arrived.
func ServiceInquiryNotification(operatorEmail string, inq *domain.ServiceInquiry) Email {
	return Email{
		To:      []Recipient{{Email: operatorEmail}},
		Subject: "New Service Inquiry: " + inq.ServiceName,
		HTMLContent: fmt.Sprintf(`<h2>New Service Inquiry</h2>
<p><strong>Service:</strong> %s</p>
%s<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
%s%s%s<p><strong>Inquiry ID:</strong> %s</p>`,
			inq.ServiceName, optionalRow("Category", inq.ServiceCategory),
			inq.Name, inq.Email, optionalRow("Phone", inq.Phone),
			optionalRow("Business", inq.BusinessName),
			optionalRow("Message", inq.Message), inq.ID),
		TextContent: fmt.Sprintf(`New Service Inquiry
Service: %s
%sName: %s
Email: %s
%s%s%sInquiry ID: %s`,
			inq.ServiceName, optionalLine("Category", inq.ServiceCategory),
			inq.Name, inq.Email, optionalLine("Phone", inq.Phone),
			optionalLine("Business", inq.BusinessName),
			optionalLine("Message", inq.Message), inq.ID),
	}
}
