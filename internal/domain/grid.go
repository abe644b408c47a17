package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/crosscourts/court-booking-service/pkg/types"
)

var (
	// ErrSlotBooked is returned when a grid mutation would drop a slot
	// that still holds an active booking; booked slots must be cancelled
	// through the gate, never force-removed, to preserve the audit trail.
	ErrSlotBooked = errors.New("domain: slot holds an active booking")

	// ErrTooManySlots is returned when a proposed grid exceeds MaxSlotsPerGrid
	ErrTooManySlots = errors.New("domain: too many slots in grid")
)

// OverlapConflictError reports the first pair of overlapping ranges found
// while validating a proposed grid.
type OverlapConflictError struct {
	RangeA TimeRange
	RangeB TimeRange
}

func (e *OverlapConflictError) Error() string {
	return fmt.Sprintf("domain: slot %s overlaps slot %s", e.RangeA, e.RangeB)
}

// ScheduleGrid is the ordered set of slots for one (court, date) pair.
// Invariant: no two slots in the grid overlap; slots are sorted
// chronologically by range.
type ScheduleGrid struct {
	CourtID int64
	Date    time.Time
	Slots   []Slot
}

// FindOverlap returns the first overlapping pair among the given ranges,
// or nil when all pairs are disjoint. Adjacent ranges are not a conflict.
func FindOverlap(ranges []TimeRange) *OverlapConflictError {
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j]) {
				return &OverlapConflictError{RangeA: ranges[i], RangeB: ranges[j]}
			}
		}
	}
	return nil
}

// ValidateSeeds checks a proposed slot set as a whole: range construction
// already happened, so only the pairwise overlap invariant and the size
// bound remain. The check is all-or-nothing: the first conflict fails the
// entire proposal and the caller must leave the existing grid untouched.
func ValidateSeeds(seeds []SlotSeed) error {
	if len(seeds) > MaxSlotsPerGrid {
		return fmt.Errorf("%w: %d > %d", ErrTooManySlots, len(seeds), MaxSlotsPerGrid)
	}

	ranges := make([]TimeRange, len(seeds))
	for i, seed := range seeds {
		ranges[i] = seed.Range
	}

	if conflict := FindOverlap(ranges); conflict != nil {
		return conflict
	}
	return nil
}

// SortSeeds orders seeds chronologically (insertion order of a stored grid
// must equal chronological order).
func SortSeeds(seeds []SlotSeed) {
	sort.Slice(seeds, func(i, j int) bool {
		return seeds[i].Range.Compare(seeds[j].Range) < 0
	})
}

// DefaultTemplate generates the built-in slot template: back-to-back slots
// of DefaultSlotDurationMinutes between DefaultOpenTime and DefaultCloseTime.
// Deterministic; used when a court has no template rows of its own.
func DefaultTemplate() []SlotSeed {
	open := types.TimeString(DefaultOpenTime)
	close := types.TimeString(DefaultCloseTime)

	seeds := make([]SlotSeed, 0)
	current := open

	for current.IsBefore(close) {
		end, err := current.AddMinutes(DefaultSlotDurationMinutes)
		if err != nil || end.IsAfter(close) {
			break
		}

		seeds = append(seeds, SlotSeed{
			Range: TimeRange{Start: current, End: end},
			Label: fmt.Sprintf("Slot %d", len(seeds)+1),
		})
		current = end
	}

	return seeds
}
