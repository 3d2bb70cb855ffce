package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque identifier for an entity.
// IDs are assigned once at creation and never change.
func NewID() string {
	return uuid.NewString()
}

// timestampLayout is RFC 3339 with a fixed-width fraction. The width
// matters: created_at is sorted as a plain string, and trimmed
// fractions would not sort chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Now returns the current UTC time as an ISO-8601 string.
// Timestamps are stored as strings on purpose: sorting by created_at
// is a plain string comparison, same as sorting by workout date.
func Now() string {
	return time.Now().UTC().Format(timestampLayout)
}
