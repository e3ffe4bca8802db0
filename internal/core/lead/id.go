package lead

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FormatLeadID renders a lead id in the LEAD-XXX display format.
func FormatLeadID(id int) string {
	return fmt.Sprintf("LEAD-%03d", id)
}

// ParseLeadNumber extracts the numeric id from either "LEAD-007" or "7".
// Returns -1 if the format is invalid.
func ParseLeadNumber(s string) int {
	num, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "LEAD-"))
	if err != nil || num <= 0 {
		return -1
	}
	return num
}

// IDGenerator produces ids for notes and activities.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}
