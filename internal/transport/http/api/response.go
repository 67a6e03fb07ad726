package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Error codes written in failure envelopes.
const (
	CodeInvalidJSON     = "invalid_json"
	CodePayloadTooLarge = "payload_too_large"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal_error"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope wraps every JSON response body.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Write encodes env with the request id stamped on it. Encoding failures
// go to the request logger; the status line is already sent by then.
func Write(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	env.RequestID = RequestID(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		Logger(r.Context()).Warn("encode response failed", zap.Int("status", status), zap.Error(err))
	}
}

func Success(w http.ResponseWriter, r *http.Request, data any) {
	Write(w, r, http.StatusOK, Envelope{Success: true, Data: data})
}

func Fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	Write(w, r, status, Envelope{Error: &Error{Code: code, Message: message}})
}
