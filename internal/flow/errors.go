package flow

import (
	"errors"
	"fmt"
)

// GuardError is returned when a boundary invariant evaluated false. It is
// fatal to the run: the orchestrator performs no compensating action, no
// rollback, and no partial retry.
type GuardError struct {
	// State is the state whose entry guard failed.
	State State

	// Guard names the violated invariant.
	Guard string

	// Expected is a human-readable description of the required outcome.
	Expected string

	// Actual is what was observed instead.
	Actual string
}

// Error implements the error interface.
func (e *GuardError) Error() string {
	return fmt.Sprintf("guard %s failed entering %s: expected %s, got %s",
		e.Guard, e.State, e.Expected, e.Actual)
}

// IsGuardError reports whether err is a failed guard.
// Uses errors.As to handle wrapped errors.
func IsGuardError(err error) bool {
	var ge *GuardError
	return errors.As(err, &ge)
}

func newGuardError(state State, guard, expected, actual string) *GuardError {
	return &GuardError{State: state, Guard: guard, Expected: expected, Actual: actual}
}
