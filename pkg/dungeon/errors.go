package dungeon

import "fmt"

// InvalidConfigError reports a configuration that was rejected before
// generation started.
type InvalidConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid configuration: %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
