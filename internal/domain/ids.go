package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Identifiers are short prefixed strings ("BK1A2B3C4D") rather than raw
// UUIDs so that logs and API payloads stay readable while the random
// tail keeps them unique.

func prefixedID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}

func NewBookingID() string { return prefixedID("BK") }
func NewClientID() string  { return prefixedID("CL") }
func NewTrainerID() string { return prefixedID("TR") }
func NewUserID() string    { return prefixedID("USR") }
