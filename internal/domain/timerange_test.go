package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	r, err := NewTimeRangeFromStrings(start, end)
	require.NoError(t, err)
	return r
}

func TestNewTimeRangeFromStrings(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid range", start: "10:00", end: "11:00"},
		{name: "valid range with seconds", start: "10:00:00", end: "10:30:00"},
		{name: "zero duration", start: "10:00", end: "10:00", wantErr: true},
		{name: "reversed bounds", start: "11:00", end: "10:00", wantErr: true},
		{name: "malformed start", start: "banana", end: "11:00", wantErr: true},
		{name: "malformed end", start: "10:00", end: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewTimeRangeFromStrings(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Start.IsBefore(r.End))
		})
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "partial overlap",
			a:    TimeRange{Start: "10:00:00", End: "11:00:00"},
			b:    TimeRange{Start: "10:30:00", End: "11:30:00"},
			want: true,
		},
		{
			name: "identical ranges",
			a:    TimeRange{Start: "10:00:00", End: "11:00:00"},
			b:    TimeRange{Start: "10:00:00", End: "11:00:00"},
			want: true,
		},
		{
			name: "containment",
			a:    TimeRange{Start: "09:00:00", End: "12:00:00"},
			b:    TimeRange{Start: "10:00:00", End: "11:00:00"},
			want: true,
		},
		{
			name: "adjacent ranges do not overlap",
			a:    TimeRange{Start: "10:00:00", End: "11:00:00"},
			b:    TimeRange{Start: "11:00:00", End: "12:00:00"},
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    TimeRange{Start: "08:00:00", End: "09:00:00"},
			b:    TimeRange{Start: "10:00:00", End: "11:00:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	outer := mustRange(t, "09:00", "12:00")

	assert.True(t, outer.Contains(mustRange(t, "10:00", "11:00")))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(mustRange(t, "08:00", "10:00")))
	assert.False(t, outer.Contains(mustRange(t, "11:00", "13:00")))
}

func TestTimeRange_Compare(t *testing.T) {
	a := mustRange(t, "09:00", "10:00")
	b := mustRange(t, "10:00", "11:00")
	c := mustRange(t, "09:00", "11:00")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	// Same start, shorter range sorts first
	assert.Equal(t, -1, a.Compare(c))
}

func TestTimeRange_Equal(t *testing.T) {
	a := mustRange(t, "10:00", "11:00")

	assert.True(t, a.Equal(mustRange(t, "10:00:00", "11:00:00")))
	assert.False(t, a.Equal(mustRange(t, "10:00", "11:30")))
}

func TestTimeRange_DurationSeconds(t *testing.T) {
	assert.Equal(t, 3600, mustRange(t, "10:00", "11:00").DurationSeconds())
	assert.Equal(t, 1800, mustRange(t, "22:00", "22:30").DurationSeconds())
}
