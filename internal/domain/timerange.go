package domain

import (
	"errors"
	"fmt"

	"github.com/crosscourts/court-booking-service/pkg/types"
)

// ErrInvalidRange is returned when a time range cannot be constructed:
// malformed time strings, zero duration, or start not strictly before end.
// Ranges crossing midnight are unrepresentable by construction (end would
// be "before" start within the day) and fail with the same error.
var ErrInvalidRange = errors.New("domain: invalid time range")

// TimeRange is a half-open interval [Start, End) of wall-clock time within
// a single calendar day, with second precision.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange constructs a validated TimeRange.
// The invariant is Start < End; equal bounds (zero duration) are rejected.
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidRange, err)
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidRange, err)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// NewTimeRangeFromStrings parses "HH:MM:SS" (or "HH:MM") bounds and constructs
// a validated TimeRange.
func NewTimeRangeFromStrings(start, end string) (TimeRange, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidRange, err)
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidRange, err)
	}
	return NewTimeRange(s, e)
}

// Overlaps reports whether two half-open ranges share any instant.
// Adjacent ranges (a.End == b.Start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// Contains reports whether other lies entirely within r.
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.IsBefore(r.Start) && !r.End.IsBefore(other.End)
}

// DurationSeconds returns the range length in seconds.
func (r TimeRange) DurationSeconds() int {
	start, err := r.Start.SecondsOfDay()
	if err != nil {
		return 0
	}
	end, err := r.End.SecondsOfDay()
	if err != nil {
		return 0
	}
	return end - start
}

// Compare orders ranges by start time, then by end time.
func (r TimeRange) Compare(other TimeRange) int {
	if c := r.Start.Compare(other.Start); c != 0 {
		return c
	}
	return r.End.Compare(other.End)
}

// Equal reports whether both bounds match exactly.
func (r TimeRange) Equal(other TimeRange) bool {
	return r.Start == other.Start && r.End == other.End
}

// String returns "HH:MM:SS-HH:MM:SS".
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
