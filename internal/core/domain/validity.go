// Package domain contains the core value types of the workspace cache.
package domain

// Validity is the memoized verdict for a single resource. "Not yet
// computed" is a first-class state, distinct from both outcomes.
type Validity uint8

const (
	// ValidityUnknown indicates the verdict has not been computed, or has
	// been discarded by an invalidation.
	ValidityUnknown Validity = iota
	// ValidityValid indicates every dependency and referenced file exists
	// and is itself valid.
	ValidityValid
	// ValidityInvalid indicates at least one dependency or referenced file
	// is broken or missing.
	ValidityInvalid
)

// String returns a human-readable name for the validity state.
func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ValidationReport is the observer-facing record of one resource's
// validity outcome. One report is emitted per completed validation.
type ValidationReport struct {
	ResourceID string
	Valid      bool
}
