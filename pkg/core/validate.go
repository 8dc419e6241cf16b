package core

import "fmt"

// ValidateWorkloads checks a workload list for the constraints the
// allocator depends on: nonempty unique IDs, complexity and priority
// within [0, 1], and known energy levels. An empty list is valid.
//
// The first violation is returned as a *ValidationError; no partial
// information about later workloads is reported.
func ValidateWorkloads(workloads []Workload) error {
	seen := make(map[string]struct{}, len(workloads))
	for _, w := range workloads {
		if w.ID == "" {
			return &ValidationError{Reason: "id must not be empty"}
		}
		if _, dup := seen[w.ID]; dup {
			return &ValidationError{WorkloadID: w.ID, Reason: "duplicate id"}
		}
		seen[w.ID] = struct{}{}

		if w.Complexity < 0 || w.Complexity > 1 {
			return &ValidationError{
				WorkloadID: w.ID,
				Reason:     fmt.Sprintf("complexity %.3f outside [0, 1]", w.Complexity),
			}
		}
		if w.Priority < 0 || w.Priority > 1 {
			return &ValidationError{
				WorkloadID: w.ID,
				Reason:     fmt.Sprintf("priority %.3f outside [0, 1]", w.Priority),
			}
		}
		if !w.Energy.Valid() {
			return &ValidationError{
				WorkloadID: w.ID,
				Reason:     fmt.Sprintf("unknown energy level %q", w.Energy),
			}
		}
	}
	return nil
}
