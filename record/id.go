package record

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var recordIDRe = regexp.MustCompile(`^ord-[0-9a-f]{32}$`)

// NewRecordID returns a fresh record identifier: "ord-" followed by 32 hex
// digits of a random UUID.
func NewRecordID() string {
	return "ord-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidRecordID reports whether id is a well-formed record identifier.
func ValidRecordID(id string) bool {
	return recordIDRe.MatchString(id)
}
