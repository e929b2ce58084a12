package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "09:45:00", want: TimeOfDay{Hour: 9, Minute: 45}},
		{name: "seconds", input: "23:59:59", want: TimeOfDay{Hour: 23, Minute: 59, Second: 59}},
		{name: "midnight", input: "00:00:00", want: TimeOfDay{}},
		{name: "missing seconds", input: "09:45", wantErr: true},
		{name: "not a number", input: "aa:00:00", wantErr: true},
		{name: "hour out of range", input: "24:00:00", wantErr: true},
		{name: "minute out of range", input: "10:60:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayMinutes(t *testing.T) {
	assert.Equal(t, 0.0, TimeOfDay{}.Minutes())
	assert.Equal(t, 585.0, TimeOfDay{Hour: 9, Minute: 45}.Minutes())
	assert.InDelta(t, 60.5, TimeOfDay{Hour: 1, Second: 30}.Minutes(), 1e-9)
	assert.Equal(t, "07:05:09", TimeOfDay{Hour: 7, Minute: 5, Second: 9}.String())
}

func TestExtractRequestedTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "negative offset is ignored", input: "2025-09-10T09:00:00-05:00", want: "09:00:00"},
		{name: "utc suffix", input: "2025-09-10T23:15:30Z", want: "23:15:30"},
		{name: "fractional seconds", input: "2025-09-10T07:30:00.000+02:00", want: "07:30:00"},
		{name: "minute precision fallback", input: "2025-09-10T07:30", want: "07:30:00"},
		{name: "space separated fallback", input: "2025-09-10 18:05:00", want: "18:05:00"},
		{name: "date only", input: "2025-09-10", wantErr: true},
		{name: "garbage", input: "tomorrow morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractRequestedTime(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRequestedDate(t *testing.T) {
	assert.Equal(t, "2025-09-10", ExtractRequestedDate("2025-09-10T09:00:00-05:00"))
	assert.Equal(t, "2025-09-10", ExtractRequestedDate("2025-09-10T23:30:00+14:00"))
	assert.Equal(t, "10/09/2025", ExtractRequestedDate("10/09/2025T09:00:00"))
	assert.Equal(t, "2025-09-10", ExtractRequestedDate("2025-09-10"))
	assert.Equal(t, "2025-09-10", ExtractRequestedDate("2025-09-10 09:00:00"))
}

func TestSpaceSeparatedTimestampAgrees(t *testing.T) {
	ts := "2025-09-10 18:05:00"

	tm, err := ExtractRequestedTime(ts)
	require.NoError(t, err)
	assert.Equal(t, "18:05:00", tm)
	assert.Equal(t, "2025-09-10", ExtractRequestedDate(ts))
}
