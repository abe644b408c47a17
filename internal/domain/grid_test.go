package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOverlap(t *testing.T) {
	t.Run("disjoint and adjacent ranges are not a conflict", func(t *testing.T) {
		ranges := []TimeRange{
			mustRange(t, "09:00", "10:00"),
			mustRange(t, "10:00", "11:00"),
			mustRange(t, "12:00", "13:00"),
		}
		assert.Nil(t, FindOverlap(ranges))
	})

	t.Run("reports the first overlapping pair", func(t *testing.T) {
		ranges := []TimeRange{
			mustRange(t, "09:00", "10:00"),
			mustRange(t, "09:30", "10:30"),
		}

		conflict := FindOverlap(ranges)
		require.NotNil(t, conflict)
		assert.Equal(t, ranges[0], conflict.RangeA)
		assert.Equal(t, ranges[1], conflict.RangeB)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Nil(t, FindOverlap(nil))
	})
}

func TestValidateSeeds(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		seeds := []SlotSeed{
			{Range: mustRange(t, "09:00", "10:00"), Label: "Morning"},
			{Range: mustRange(t, "10:00", "11:00")},
		}
		assert.NoError(t, ValidateSeeds(seeds))
	})

	t.Run("overlap fails the whole proposal", func(t *testing.T) {
		seeds := []SlotSeed{
			{Range: mustRange(t, "09:00", "11:00")},
			{Range: mustRange(t, "10:00", "12:00")},
		}

		err := ValidateSeeds(seeds)
		var conflict *OverlapConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("too many slots", func(t *testing.T) {
		seeds := make([]SlotSeed, 0, MaxSlotsPerGrid+1)
		for i := 0; i <= MaxSlotsPerGrid; i++ {
			start := fmt.Sprintf("00:%02d:00", i%60)
			end := fmt.Sprintf("00:%02d:30", i%60)
			r, err := NewTimeRangeFromStrings(start, end)
			require.NoError(t, err)
			seeds = append(seeds, SlotSeed{Range: r})
		}

		assert.ErrorIs(t, ValidateSeeds(seeds), ErrTooManySlots)
	})
}

func TestSortSeeds(t *testing.T) {
	seeds := []SlotSeed{
		{Range: mustRange(t, "12:00", "13:00")},
		{Range: mustRange(t, "09:00", "10:00")},
		{Range: mustRange(t, "10:00", "11:00")},
	}

	SortSeeds(seeds)

	for i := 1; i < len(seeds); i++ {
		assert.True(t, seeds[i-1].Range.Compare(seeds[i].Range) < 0)
	}
	assert.Equal(t, mustRange(t, "09:00", "10:00"), seeds[0].Range)
}

func TestDefaultTemplate(t *testing.T) {
	seeds := DefaultTemplate()

	// 06:00-23:00 hourly gives 17 back-to-back slots
	require.Len(t, seeds, 17)
	assert.Equal(t, mustRange(t, "06:00", "07:00"), seeds[0].Range)
	assert.Equal(t, mustRange(t, "22:00", "23:00"), seeds[len(seeds)-1].Range)

	for i := 1; i < len(seeds); i++ {
		assert.Equal(t, seeds[i-1].Range.End, seeds[i].Range.Start)
	}

	assert.NoError(t, ValidateSeeds(seeds))
}
