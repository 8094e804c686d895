package engine

import "errors"

// Failure kinds shared by gameplay components. Operations wrap these with
// context; callers match them with errors.Is.
var (
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrConfigurationMissing  = errors.New("configuration missing")
	ErrRequirementNotMet     = errors.New("requirement not met")
	ErrMissingItemData       = errors.New("missing item data")
)
