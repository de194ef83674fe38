// Package derive holds the pure derivation functions behind the dashboard and
// expense views: trip status classification, stay night/price math, expense
// aggregation and dashboard summarization. Nothing in this package performs
// I/O or holds state; every function is a deterministic mapping from its input
// snapshot to derived values, safe to recompute on every render.
package derive

import (
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// Date layouts accepted from the booking API. Callers are expected to send
// ISO-8601 dates; anything else fails parsing and falls into the safe default
// paths below.
var whenLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseWhen parses a date string in one of the accepted layouts. The second
// return value reports whether parsing succeeded.
func ParseWhen(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StatusAt classifies a trip relative to the reference instant: Upcoming iff
// the start date is strictly after now. A start date equal to now, in the
// past, or unparseable classifies as Completed. The result changes over
// wall-clock time, so callers must re-evaluate on every query rather than
// caching it.
func StatusAt(startDate string, now time.Time) types.TripStatus {
	start, ok := ParseWhen(startDate)
	if !ok {
		return types.TripStatusCompleted
	}
	if start.After(now) {
		return types.TripStatusUpcoming
	}
	return types.TripStatusCompleted
}
