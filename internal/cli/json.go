package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/rileyhilliard/icp/internal/validate"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
	ErrCodeResolveFailed    = "RESOLVE_FAILED"
	ErrCodeOperationFailed  = "OPERATION_FAILED"
	ErrCodeNotImplemented   = "NOT_IMPLEMENTED"
	ErrCodeCancelled        = "CANCELLED"
	ErrCodeUnknown          = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: ErrorToJSON(err)})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		return &JSONError{
			Code:    ErrCodeValidationFailed,
			Message: verr.Error(),
			Details: map[string]string{"rule": string(verr.Rule)},
		}
	}

	var icpErr *errors.Error
	if errors.As(err, &icpErr) {
		return &JSONError{
			Code:       mapErrorCode(icpErr.Code, icpErr.Message),
			Message:    icpErr.Message,
			Suggestion: icpErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	msgLower := strings.ToLower(message)
	switch internalCode {
	case errors.ErrConfig:
		if strings.Contains(msgLower, "not found") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrValidation:
		return ErrCodeValidationFailed
	case errors.ErrResolve:
		return ErrCodeResolveFailed
	case errors.ErrOperation:
		if strings.Contains(msgLower, "not implemented") {
			return ErrCodeNotImplemented
		}
		return ErrCodeOperationFailed
	case errors.ErrExec:
		if strings.Contains(msgLower, "cancelled") {
			return ErrCodeCancelled
		}
	}
	return ErrCodeUnknown
}
