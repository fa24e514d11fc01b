package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAttribute indicates a required event attribute was absent
	ErrMissingAttribute = errors.New("missing event attribute")
	// ErrMalformedAttribute indicates an attribute value did not parse as the expected type
	ErrMalformedAttribute = errors.New("malformed event attribute")
)

// MissingAttributeError wraps ErrMissingAttribute with the attribute key
func MissingAttributeError(key string) error {
	return fmt.Errorf("%w: %q", ErrMissingAttribute, key)
}

// MalformedAttributeError wraps ErrMalformedAttribute with the key and raw value
func MalformedAttributeError(key, value string) error {
	return fmt.Errorf("%w: %q=%q", ErrMalformedAttribute, key, value)
}
