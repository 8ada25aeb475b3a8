package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "leadgate/pkg/domain-errors"
)

// genericInternalMessage is what callers see when something unanticipated
// happened. Internals never leak through the transport boundary.
const genericInternalMessage = "An unexpected error occurred. Please try again later."

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response", "error", err)
	}
}

// errorEnvelope is the uniform failure body for every intake endpoint.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteError translates a domain error into the failure envelope. Client-caused
// codes keep their description; internal errors get a generic message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := genericInternalMessage
	var de *dErrors.Error
	if code != dErrors.CodeInternal && errors.As(err, &de) {
		message = de.Description
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), errorEnvelope{Success: false, Message: message})
}

// WriteFailure writes the failure envelope with an explicit status and message.
// Used where response wording is dictated by the intake flow rather than an
// error code.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorEnvelope{Success: false, Message: message})
}
