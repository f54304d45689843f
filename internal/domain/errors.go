package domain

import "errors"

var (
	// ErrNoActiveCycle means no dues cycle is currently active. This is a
	// legitimate idle state for automation, not a fault.
	ErrNoActiveCycle = errors.New("no active dues cycle")

	ErrCycleNotFound = errors.New("dues cycle not found")

	ErrMemberNotFound = errors.New("member not found")

	// ErrNoteRequired rejects offline-payment and waiver transitions that
	// carry no audit reason.
	ErrNoteRequired = errors.New("a note is required for this action")

	ErrInvalidCycleDates = errors.New("cycle end date must be after start date")

	ErrUnknownAction = errors.New("unknown automation action")
)
