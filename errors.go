package currencyinput

import (
	"errors"
	"fmt"
)

// ErrEditRejected indicates that a candidate edit failed shape validation.
// The input keeps its previous state.
var ErrEditRejected = errors.New("currencyinput: edit rejected")

// ErrInvalidConfig is matched by every *ConfigError through errors.Is.
var ErrInvalidConfig = errors.New("currencyinput: invalid config")

// ConfigError reports an option combination that cannot produce a working input.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("currencyinput: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("currencyinput: %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func rejectf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrEditRejected}, args...)...)
}
