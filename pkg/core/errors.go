package core

import "fmt"

// ValidationError reports malformed workload input: an empty or
// duplicate ID, or a complexity/priority outside [0, 1]. Validation
// fails fast and no partial allocation is ever returned alongside it.
type ValidationError struct {
	// WorkloadID is the offending workload's ID, possibly empty.
	WorkloadID string
	// Reason describes the violated constraint.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.WorkloadID == "" {
		return fmt.Sprintf("invalid workload: %s", e.Reason)
	}
	return fmt.Sprintf("invalid workload %q: %s", e.WorkloadID, e.Reason)
}

// ConfigurationError reports a malformed AllocatorConfig. It is raised
// at allocator construction time, never per call.
type ConfigurationError struct {
	// Field is the offending configuration field.
	Field string
	// Reason describes the violated constraint.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid allocator config: %s: %s", e.Field, e.Reason)
}
