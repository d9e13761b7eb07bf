package api

import (
	"context"
	"errors"
	"net/http"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
)

// StatusClientClosedRequest is reported when the caller goes away before
// the lookup finishes. It is not a registered HTTP status.
const StatusClientClosedRequest = 499

// Client-facing messages. Internal error text is never sent to clients,
// except validation messages, which only describe the caller's input.
const (
	msgNotFound   = "Resource not found."
	msgUpstream   = "An error occurred while processing your request."
	msgTimeout    = "The request timed out."
	msgCancelled  = "The request was cancelled."
	msgUnexpected = "An unexpected error occurred."
	msgBadMethod  = "Method not allowed."
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Message string `json:"message"`
}

// mapError picks the HTTP status and client message for err.
func mapError(err error) (int, string) {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeNotFound:
		return http.StatusNotFound, msgNotFound
	case perrors.ErrCodeInvalidInput:
		// Validation messages describe the input only and are safe to echo.
		return http.StatusBadRequest, perrors.UserMessage(err)
	case perrors.ErrCodeUpstream, perrors.ErrCodeNetwork:
		return http.StatusInternalServerError, msgUpstream
	case perrors.ErrCodeCancelled:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, msgTimeout
		}
		return StatusClientClosedRequest, msgCancelled
	default:
		return http.StatusInternalServerError, msgUnexpected
	}
}
