package override

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured reports a domain read before any instance was installed.
	ErrNotConfigured = errors.New("settings not configured")
	// ErrConfigSource reports an unusable fixture file.
	ErrConfigSource = errors.New("settings source unavailable")
)

// NotConfiguredError carries the domain that was read too early.
type NotConfiguredError struct {
	Domain Domain
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s settings not configured: call Reset or install an override first", e.Domain)
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrNotConfigured
}

// SourceError wraps a failure to locate, read, parse or validate the fixture
// backing the sectioned defaults.
type SourceError struct {
	Path    string
	Section string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sectioned settings source: %v", e.Err)
	}
	return fmt.Sprintf("sectioned settings source %s [%s]: %v", e.Path, e.Section, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	return target == ErrConfigSource
}
