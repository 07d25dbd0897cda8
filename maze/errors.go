package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is wrapped by every ConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid maze configuration")

	// ErrRoomPlacementInfeasible is returned when the room placer runs out of attempts.
	ErrRoomPlacementInfeasible = errors.New("infeasible room configuration")
)

// ConfigurationError names the configuration field that failed validation.
type ConfigurationError struct {
	Field  string // Name of the offending field
	Reason string // Human readable explanation
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
