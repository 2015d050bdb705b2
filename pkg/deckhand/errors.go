package deckhand

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction problems.
var (
	// ErrEmptyDeck indicates a deck with no slides. A presentation needs at
	// least one slide to have an active index.
	ErrEmptyDeck = errors.New("deck has no slides")

	// ErrNoScheduler indicates a Presenter was built without a scheduler.
	ErrNoScheduler = errors.New("no scheduler provided")
)

// InfrastructureError represents a host-level failure (SDL would not
// start, a font failed to load, an input device could not be opened).
// Navigation itself never produces errors; only the machinery around it.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "open_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deckhand: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("deckhand: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
