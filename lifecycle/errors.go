package lifecycle

import (
	"errors"
	"fmt"
)

// Failure classes. Every domain error wraps exactly one of them; anything
// that wraps none is an internal failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrDonationNotFound  = fmt.Errorf("donation %w", ErrNotFound)
	ErrRequestNotFound   = fmt.Errorf("request %w", ErrNotFound)
	ErrFoodItemNotFound  = fmt.Errorf("food item %w", ErrNotFound)
	ErrVolunteerNotFound = fmt.Errorf("volunteer %w", ErrNotFound)

	ErrDonationUnavailable = fmt.Errorf("this donation is not available: %w", ErrConflict)
	ErrNothingToDistribute = fmt.Errorf("donation has no recipient to distribute to: %w", ErrConflict)
	ErrAlreadyCollected    = fmt.Errorf("food item already collected: %w", ErrConflict)
	ErrNotCollectable      = fmt.Errorf("food item can no longer be collected: %w", ErrConflict)
	ErrConcurrentUpdate    = fmt.Errorf("record changed while it was being updated: %w", ErrConflict)

	ErrStatusChangeDenied = fmt.Errorf("only an admin may change a request status: %w", ErrForbidden)

	ErrInvalidStatus  = fmt.Errorf("unknown status: %w", ErrValidation)
	ErrDuplicateEmail = fmt.Errorf("email already exists: %w", ErrValidation)
	ErrEmptyReward    = fmt.Errorf("reward label is required: %w", ErrValidation)
	ErrEmptyUpdate    = fmt.Errorf("nothing to update: %w", ErrValidation)
)

// MissingFieldsError lists required fields absent from a payload
type MissingFieldsError struct {
	Fields []string
}

func (e MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Fields)
}

func (e MissingFieldsError) Unwrap() error {
	return ErrValidation
}
