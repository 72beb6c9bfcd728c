package gen

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GenerationError is a failed generation call, carrying enough context for the
// UI to show a retry affordance. Transient marks failures the retry executor
// may re-attempt (overload, rate limiting, server unavailable); everything
// else escalates immediately.
type GenerationError struct {
	Title     string
	Message   string
	Transient bool
	Err       error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Title, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Status codes the Gemini API documents as transient.
const (
	codeRateLimited        = 429
	codeInternal           = 500
	codeServiceUnavailable = 503
)

// classify wraps a raw backend error, tagging the transient class so the
// retry executor can match on the tag instead of status-code duck typing.
func classify(title string, err error) *GenerationError {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case codeRateLimited, codeInternal, codeServiceUnavailable:
			return &GenerationError{
				Title:     title,
				Message:   fmt.Sprintf("The AI service is temporarily unavailable (status %d)", apiErr.Code),
				Transient: true,
				Err:       err,
			}
		}
	}

	return &GenerationError{
		Title:   title,
		Message: "The AI service returned an error",
		Err:     err,
	}
}

// contractViolation reports a structured response that fails schema
// validation. Never retried and never silently defaulted.
func contractViolation(title string, err error) *GenerationError {
	return &GenerationError{
		Title:   title,
		Message: "The AI service returned a malformed response",
		Err:     err,
	}
}
