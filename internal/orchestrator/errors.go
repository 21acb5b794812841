package orchestrator

import "errors"

var (
	// ErrSessionNotFound indicates an unknown or expired session id
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyMessage indicates a turn with no text to process
	ErrEmptyMessage = errors.New("empty message")

	// ErrNoPlan indicates no plan has been generated for the session yet
	ErrNoPlan = errors.New("no plan generated for session")
)
