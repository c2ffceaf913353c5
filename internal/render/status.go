package render

import "strings"

// StatusClass is the colour bucket of a status badge.
type StatusClass int

const (
	StatusUnknown StatusClass = iota
	StatusOpen
	StatusFull
	StatusMixed
)

// Classify maps a listing or course status onto a badge class. Listing
// statuses (available, leased, processing) share buckets with course
// statuses (open, full, mixed).
func Classify(status string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "open", "available":
		return StatusOpen
	case "full", "leased":
		return StatusFull
	case "mixed", "processing":
		return StatusMixed
	default:
		return StatusUnknown
	}
}

func (c StatusClass) String() string {
	switch c {
	case StatusOpen:
		return "open"
	case StatusFull:
		return "full"
	case StatusMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Background returns the badge fill colour.
func (c StatusClass) Background() string {
	switch c {
	case StatusOpen:
		return "#ecfdf3"
	case StatusFull:
		return "#fef2f2"
	case StatusMixed:
		return "#fffbeb"
	default:
		return "#f3f4f6"
	}
}

// Foreground returns the badge text colour.
func (c StatusClass) Foreground() string {
	switch c {
	case StatusOpen:
		return "#166534"
	case StatusFull:
		return "#991b1b"
	case StatusMixed:
		return "#92400e"
	default:
		return "#374151"
	}
}
