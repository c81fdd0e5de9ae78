package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, date, start, end string) TimeSlot {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	s, err := time.Parse("15:04", start)
	require.NoError(t, err)
	e, err := time.Parse("15:04", end)
	require.NoError(t, err)

	slot, err := NewTimeSlot(d, s, e)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlotValidation(t *testing.T) {
	date, err := time.Parse("2006-01-02", "2025-12-15")
	require.NoError(t, err)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "end after start", start: "09:00", end: "10:00", wantErr: false},
		{name: "end equals start", start: "09:00", end: "09:00", wantErr: true},
		{name: "end before start", start: "10:00", end: "09:00", wantErr: true},
		{name: "one minute slot", start: "09:00", end: "09:01", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("15:04", tt.start)
			require.NoError(t, err)
			end, err := time.Parse("15:04", tt.end)
			require.NoError(t, err)

			slot, err := NewTimeSlot(date, start, end)
			if tt.wantErr {
				var validationErr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, slot.EndTime.After(slot.StartTime))
			assert.Equal(t, slot.Date.Year(), slot.StartTime.Year())
			assert.Equal(t, slot.Date.Day(), slot.StartTime.Day())
		})
	}
}

func TestTimeSlotOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    TimeSlot
		b    TimeSlot
		want bool
	}{
		{
			name: "identical slots overlap",
			a:    mustSlot(t, "2025-12-15", "09:00", "10:00"),
			b:    mustSlot(t, "2025-12-15", "09:00", "10:00"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustSlot(t, "2025-12-15", "09:00", "10:00"),
			b:    mustSlot(t, "2025-12-15", "09:30", "10:30"),
			want: true,
		},
		{
			name: "containment",
			a:    mustSlot(t, "2025-12-15", "09:00", "12:00"),
			b:    mustSlot(t, "2025-12-15", "10:00", "11:00"),
			want: true,
		},
		{
			name: "back to back slots do not overlap",
			a:    mustSlot(t, "2025-12-15", "09:00", "10:00"),
			b:    mustSlot(t, "2025-12-15", "10:00", "11:00"),
			want: false,
		},
		{
			name: "disjoint same day",
			a:    mustSlot(t, "2025-12-15", "09:00", "10:00"),
			b:    mustSlot(t, "2025-12-15", "14:00", "15:00"),
			want: false,
		},
		{
			name: "same times different days",
			a:    mustSlot(t, "2025-12-15", "09:00", "10:00"),
			b:    mustSlot(t, "2025-12-16", "09:00", "10:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.OverlapsWith(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.OverlapsWith(tt.a))
		})
	}
}

func TestNewSessionDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{name: "below minimum", minutes: 29, wantErr: true},
		{name: "at minimum", minutes: 30, wantErr: false},
		{name: "typical session", minutes: 60, wantErr: false},
		{name: "at maximum", minutes: 120, wantErr: false},
		{name: "above maximum", minutes: 121, wantErr: true},
		{name: "zero", minutes: 0, wantErr: true},
		{name: "negative", minutes: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration, err := NewSessionDuration(tt.minutes)
			if tt.wantErr {
				var validationErr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, duration.Minutes())
		})
	}
}
