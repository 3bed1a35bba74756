package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier for recorded actions.
// Version 7 keeps IDs sortable by creation time; if the clock source fails a
// random v4 is returned instead.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
