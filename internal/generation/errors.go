package generation

import (
	"errors"
	"fmt"
)

// ErrEmptyContent marks an attempt whose response contained no usable text
// after trimming. Chain walking treats it exactly like a transport failure.
var ErrEmptyContent = errors.New("provider returned empty content")

// TransportError wraps a network, authentication, or rate-limit failure from
// a single provider call. Status is the HTTP status code when one was
// received, zero otherwise.
type TransportError struct {
	Provider ProviderID
	Model    string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: model %s: status %d: %v", e.Provider, e.Model, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: model %s: %v", e.Provider, e.Model, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ChainExhaustedError reports that every model in a provider's fallback
// chain failed. Err holds the last underlying failure.
type ChainExhaustedError struct {
	Provider ProviderID
	Attempts int
	Err      error
}

func (e *ChainExhaustedError) Error() string {
	return fmt.Sprintf("%s: all %d fallback models failed: %v", e.Provider, e.Attempts, e.Err)
}

func (e *ChainExhaustedError) Unwrap() error { return e.Err }

// TotalFailureError is the only error that reaches the caller under normal
// operation: both the primary and the flipped provider failed. The message
// names both providers so a caller can tell a full outage from a
// single-provider one.
type TotalFailureError struct {
	Primary     ProviderID
	Fallback    ProviderID
	PrimaryErr  error
	FallbackErr error
}

func (e *TotalFailureError) Error() string {
	return fmt.Sprintf("Both providers failed: %s: %v | %s: %v",
		e.Primary, e.PrimaryErr, e.Fallback, e.FallbackErr)
}

func (e *TotalFailureError) Unwrap() []error {
	return []error{e.PrimaryErr, e.FallbackErr}
}
