package shifttime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		now     time.Time
		want    time.Time
		wantErr bool
	}{
		{
			name: "Should keep current year for a future date",
			date: "15/06",
			time: "10:00",
			now:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should roll to next year when date is more than 180 days past",
			date: "15/06",
			time: "10:00",
			now:  time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should keep current year for a recently passed date",
			date: "15/06",
			time: "10:00",
			now:  time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should keep current year at exactly 180 days past",
			date: "04/01",
			time: "10:00",
			now:  time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC), // 180 days after Jan 4
			want: time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should resolve end-of-year shift entered the day before",
			date: "01/01",
			time: "08:00",
			now:  time.Date(2023, 12, 31, 8, 15, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "Should accept 29/02 when it resolves into a leap year",
			date: "29/02",
			time: "12:00",
			now:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "Should reject 29/02 when the resolved year is not a leap year",
			date:    "29/02",
			time:    "12:00",
			now:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject a date that does not exist in any year",
			date:    "31/02",
			time:    "10:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject day out of range",
			date:    "32/01",
			time:    "10:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject month out of range",
			date:    "10/13",
			time:    "10:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject hour out of range",
			date:    "10/01",
			time:    "24:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject minute out of range",
			date:    "10/01",
			time:    "10:60",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject wrong date separator",
			date:    "10-01",
			time:    "10:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject non-numeric input",
			date:    "aa/bb",
			time:    "10:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Should reject too many date parts",
			date:    "10/01/2024",
			time:    "10:00",
			now:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.date, tt.time, tt.now)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	now := time.Date(2024, 12, 20, 15, 30, 0, 0, time.UTC)

	first, err := Resolve("15/06", "10:00", now)
	require.NoError(t, err)

	second, err := Resolve("15/06", "10:00", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("15/03"))
	assert.True(t, ValidDate("31/12"))
	assert.False(t, ValidDate("32/01"))
	assert.False(t, ValidDate("15/13"))
	assert.False(t, ValidDate("15"))
	assert.False(t, ValidDate("15-03"))
	assert.False(t, ValidDate("aa/03"))
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("00:00"))
	assert.True(t, ValidTime("23:59"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime("12:60"))
	assert.False(t, ValidTime("12"))
	assert.False(t, ValidTime("12h00"))
}

func TestTodayTomorrow(t *testing.T) {
	now := time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "31/12", Today(now))
	assert.Equal(t, "01/01", Tomorrow(now))
}
