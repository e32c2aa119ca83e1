package common

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// UpstreamUnavailableError means the species source failed for a reason other
// than a missing record. Status is 0 for network-level failures.
type UpstreamUnavailableError struct {
	Service string
	Status  int
	Detail  string
}

func (e UpstreamUnavailableError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s unavailable (status %d): %s", e.Service, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s unavailable: %s", e.Service, e.Detail)
}

func IsUpstreamUnavailable(err error) bool {
	var ue UpstreamUnavailableError
	return errors.As(err, &ue)
}

// RateLimitedError is a 429 from the translation service. It surfaces
// immediately and must never consume retry budget.
type RateLimitedError struct {
	Service string
}

func (e RateLimitedError) Error() string {
	return fmt.Sprintf("%s rate limit exceeded", e.Service)
}

func IsRateLimited(err error) bool {
	var rl RateLimitedError
	return errors.As(err, &rl)
}

// UpstreamError covers translation failures that are neither rate limits nor
// recoverable within the retry budget.
type UpstreamError struct {
	Service string
	Status  int
	Detail  string
}

func (e UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Service, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s error: %s", e.Service, e.Detail)
}

func IsUpstream(err error) bool {
	var ue UpstreamError
	return errors.As(err, &ue)
}

type ValidationError struct {
	Messages []string
}

// Join flattens the individual validation messages into the single
// comma-separated string exposed to callers.
func (e ValidationError) Join() string {
	if len(e.Messages) == 0 {
		return "Unknown error"
	}
	return strings.Join(e.Messages, ", ")
}

func (e ValidationError) Error() string {
	return e.Join()
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
