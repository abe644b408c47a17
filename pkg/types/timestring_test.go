package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "full format", input: "10:00:00", want: "10:00:00"},
		{name: "short format is normalized", input: "10:00", want: "10:00:00"},
		{name: "short format with minutes", input: "21:30", want: "21:30:00"},
		{name: "seconds are preserved", input: "10:15:30", want: "10:15:30"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, TimeString("09:05:07"), NewTimeString(moment))
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00:00")
	b := TimeString("10:00:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestTimeString_SecondsOfDay(t *testing.T) {
	seconds, err := TimeString("01:30:15").SecondsOfDay()
	require.NoError(t, err)
	assert.Equal(t, 5415, seconds)

	_, err = TimeString("bad").SecondsOfDay()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "one hour", start: "10:00:00", minutes: 60, want: "11:00:00"},
		{name: "half hour", start: "22:15:00", minutes: 30, want: "22:45:00"},
		{name: "crosses midnight", start: "23:30:00", minutes: 60, wantErr: true},
		{name: "lands exactly on midnight", start: "23:00:00", minutes: 60, wantErr: true},
		{name: "negative below day start", start: "00:10:00", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	var fromTime TimeString
	require.NoError(t, fromTime.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30:00"), fromTime)

	var fromBytes TimeString
	require.NoError(t, fromBytes.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00:00"), fromBytes)

	var fromString TimeString
	require.NoError(t, fromString.Scan("08:30"))
	assert.Equal(t, TimeString("08:30:00"), fromString)

	var fromNil TimeString
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	var bad TimeString
	assert.ErrorIs(t, bad.Scan(42), ErrInvalidFormat)
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("12:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00:00", value)

	value, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = TimeString("not-a-time").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
