package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", input: "2025-01-01", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding whitespace", input: " 2025-03-09 ", want: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "empty", input: "", wantErr: true},
		{name: "non leap day", input: "2023-02-29", wantErr: true},
		{name: "month 13", input: "2025-13-01", wantErr: true},
		{name: "wrong layout", input: "01/02/2025", wantErr: true},
		{name: "timestamp", input: "2025-01-01T10:00:00Z", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	// 01:00 local on the 2nd is still the 1st in UTC; DateOf keeps the local day.
	local := time.Date(2025, 6, 2, 1, 0, 0, 0, kolkata)

	got := DateOf(local)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2025-06-02", FormatDate(got))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	a := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 1, 31, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 30, DaysBetween(a, b))
	assert.Equal(t, -30, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// Far apart years would overflow time.Duration.
	early := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3652058, DaysBetween(early, late))
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
		AddDays(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), 28))
	assert.Equal(t, time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC),
		AddDays(time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC), 28))
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		AddDays(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), 21))
}
