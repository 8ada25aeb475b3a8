// Package handler is the thin HTTP layer over the intake services. Handlers
// decode, delegate, and translate; business rules live in the service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadgate/internal/intake"
	"leadgate/internal/platform/middleware"
	dErrors "leadgate/pkg/domain-errors"
	"leadgate/pkg/platform/httputil"
)

// Service is the intake orchestration surface the handlers delegate to.
type Service interface {
	SubmitContact(ctx context.Context, req intake.ContactRequest) (*intake.ContactResponse, error)
	RegisterForEvent(ctx context.Context, req intake.EventRegistrationRequest) (*intake.RegistrationResponse, error)
	VerifyEventPayment(ctx context.Context, req intake.PaymentVerificationRequest) (*intake.PaymentVerificationResponse, error)
	RegisterForWebinar(ctx context.Context, req intake.WebinarRegistrationRequest) (*intake.RegistrationResponse, error)
	VerifyWebinarPayment(ctx context.Context, req intake.PaymentVerificationRequest) (*intake.PaymentVerificationResponse, error)
	SubmitServiceInquiry(ctx context.Context, req intake.ServiceInquiryRequest) (*intake.ServiceInquiryResponse, error)
	RegisterForBusinessClub(ctx context.Context, req intake.BusinessClubRegistrationRequest) (*intake.BusinessClubRegistrationResponse, error)
}

// Handler handles the intake endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register mounts the intake routes on the given router. Rate limiting and
// the rest of the middleware chain are the router's concern.
func (h *Handler) Register(r chi.Router) {
	r.Post("/contact", h.handleContact)
	r.Post("/events/register", h.handleEventRegistration)
	r.Post("/events/verify-payment", h.handleEventVerification)
	r.Post("/webinar/register", h.handleWebinarRegistration)
	r.Post("/webinar/verify-payment", h.handleWebinarVerification)
	r.Post("/services/inquiry", h.handleServiceInquiry)
	r.Post("/business-club/register", h.handleBusinessClubRegistration)
}

// Generic 500 wording per endpoint family, matching what submitters have
// always been shown.
const (
	internalRequest      = "An error occurred while processing your request. Please try again later."
	internalRegistration = "An error occurred while processing your registration. Please try again later."
	internalApplication  = "An error occurred while processing your application. Please try again later."
	internalVerification = "An error occurred while verifying payment. Please try again later."
)

// decode reads a JSON body into v; a malformed body is a client error.
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.WarnContext(r.Context(), "malformed request body",
			"request_id", middleware.GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		return dErrors.Wrap(dErrors.CodeBadRequest, "Invalid request body", err)
	}
	return nil
}

// writeError sends client-caused errors through the shared translator and
// masks everything else behind the endpoint family's generic 500 message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, internalMessage string) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), "intake request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		httputil.WriteFailure(w, http.StatusInternalServerError, internalMessage)
		return
	}
	httputil.WriteError(w, err)
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var req intake.ContactRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.SubmitContact(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalRequest)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEventRegistration(w http.ResponseWriter, r *http.Request) {
	var req intake.EventRegistrationRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.RegisterForEvent(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalRegistration)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEventVerification(w http.ResponseWriter, r *http.Request) {
	var req intake.PaymentVerificationRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.VerifyEventPayment(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalVerification)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleWebinarRegistration(w http.ResponseWriter, r *http.Request) {
	var req intake.WebinarRegistrationRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.RegisterForWebinar(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalRegistration)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleWebinarVerification(w http.ResponseWriter, r *http.Request) {
	var req intake.PaymentVerificationRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.VerifyWebinarPayment(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalVerification)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleServiceInquiry(w http.ResponseWriter, r *http.Request) {
	var req intake.ServiceInquiryRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.SubmitServiceInquiry(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalRequest)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleBusinessClubRegistration(w http.ResponseWriter, r *http.Request) {
	var req intake.BusinessClubRegistrationRequest
	if err := h.decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp, err := h.service.RegisterForBusinessClub(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalApplication)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
