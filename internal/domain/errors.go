package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAPIKeyRequired is returned when a client is built without an API key.
	ErrAPIKeyRequired = errors.New("api key is required")

	// ErrUnboundCategoryKind is returned by a category cache that was not bound to a kind.
	ErrUnboundCategoryKind = errors.New("category cache has no category kind")

	// ErrLanguageNotDefined is returned for language codes or ids the catalog does not know.
	ErrLanguageNotDefined = errors.New("language not defined")

	// ErrLoginRequired is returned by operations that need an authenticated session.
	ErrLoginRequired = errors.New("login required")

	// ErrUserLogin is returned when the catalog does not open a session for a login.
	ErrUserLogin = errors.New("user login failed")
)

// CommunicationError is a failure of one remote call, either a fault reported by the
// catalog or a transport failure before a response could be decoded.
type CommunicationError struct {
	Method  string
	Code    int    // Fault code, 0 for transport failures
	Message string // Fault string reported by the catalog
	Err     error
}

func (e *CommunicationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote call %s failed: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("remote call %s failed: fault %d: %s", e.Method, e.Code, e.Message)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// IsFault reports whether the catalog itself rejected the call.
func (e *CommunicationError) IsFault() bool {
	return e.Err == nil
}

// ConfigurationError reports a component used without the state it needs.
type ConfigurationError struct {
	Component string
	Reason    string
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s misconfigured: %s", e.Component, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ArgumentError reports a malformed argument detected before any remote call.
type ArgumentError struct {
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}
