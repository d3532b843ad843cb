package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so handlers can map it to an HTTP status
// without inspecting message strings.
type Kind int

const (
	// KindValidation covers user-correctable input problems: missing
	// inputs, texts below the minimum length, unsupported formats.
	KindValidation Kind = iota
	// KindExtraction covers documents that could not be converted to
	// text (corrupt binary, bad remote link, fetch failure).
	KindExtraction
	// KindLLM covers transport failures against the model backend:
	// timeout, non-2xx response, malformed completion envelope.
	KindLLM
	// KindParse covers model output that could not be coerced into
	// structured data.
	KindParse
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Extraction(message string, cause error) *Error {
	return &Error{Kind: KindExtraction, Message: message, Err: cause}
}

func LLM(message string, cause error) *Error {
	return &Error{Kind: KindLLM, Message: message, Err: cause}
}

func Parse(message string) *Error {
	return &Error{Kind: KindParse, Message: message}
}

// StatusCode maps an error to the HTTP status the API should answer
// with. Validation and extraction failures are the caller's to fix;
// everything else is on us or the model backend.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindValidation, KindExtraction:
			return http.StatusBadRequest
		case KindLLM, KindParse:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
