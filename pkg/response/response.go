// Package response centralizes command output shapes and exit codes.
// Commands rely on it to keep their RunE bodies thin and uniform.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/maxviazov/beauty-pagination/internal/config"
	"github.com/maxviazov/beauty-pagination/internal/pagination"
	"github.com/maxviazov/beauty-pagination/internal/repository"
	"github.com/maxviazov/beauty-pagination/internal/service"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitConfig   = 3
	ExitNotFound = 4
)

// ErrUsage marks a malformed command line: unknown flag, bad flag value, wrong arguments.
var ErrUsage = errors.New("usage error")

// ErrorPayload is the canonical error envelope printed in JSON mode.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an exit code and payload.
// Extend here as new domain error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return ExitOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return ExitUsage, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsage, ErrorPayload{Error: "usage", Message: err.Error()}
	case errors.Is(err, pagination.ErrInvalidRequest):
		return ExitUsage, ErrorPayload{Error: "invalid_request", Message: err.Error()}
	case errors.Is(err, repository.ErrNotFound):
		return ExitNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, repository.ErrSnapshot):
		return ExitConfig, ErrorPayload{Error: "invalid_snapshot", Message: err.Error()}
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfig, ErrorPayload{Error: "invalid_config", Message: err.Error()}
	default:
		return ExitInternal, ErrorPayload{Error: "internal_error", Message: err.Error()}
	}
}

// WriteError prints err in the requested shape and returns the exit code to use.
func WriteError(w io.Writer, err error, asJSON bool) int {
	code, payload := MapError(err)
	if asJSON {
		_ = WriteData(w, payload)
		return code
	}
	msg := payload.Error
	if payload.Message != "" {
		msg += ": " + payload.Message
	}
	fmt.Fprintln(w, "error:", msg)
	for _, fe := range payload.FieldErrors {
		fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
	}
	return code
}

// WriteData writes v as indented JSON.
func WriteData(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
