package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrExternalTool  = errors.New("external tool error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrBusy          = errors.New("resource busy")
	ErrTransient     = errors.New("transient failure")
)

// Failure kinds reported in task logs and summaries.
const (
	KindConversionFailure = "conversion_failure"
	KindUnexpectedFailure = "unexpected_failure"
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureKind classifies a task error. Errors reported by the external encoder
// (non-zero exit) and rejected outputs are conversion failures; everything
// else, such as a missing binary or an I/O error, is unexpected.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrExternalTool), errors.Is(err, ErrValidation):
		return KindConversionFailure
	default:
		return KindUnexpectedFailure
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
