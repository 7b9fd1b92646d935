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
		{name: "valid HH:MM", input: "08:30", want: "08:30"},
		{name: "seconds are truncated", input: "08:30:45", want: "08:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString_TruncatesSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 8, 30, 59, 123456, time.UTC))
	assert.Equal(t, TimeString("08:30"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(510)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:30").IsAfter("09:00"))
	assert.False(t, TimeString("08:59").IsAfter("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 15, 33, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan("10:45:00"))
	assert.Equal(t, TimeString("10:45"), ts)

	require.NoError(t, ts.Scan([]byte("11:00")))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
