package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2025-03-12 15:04 local.
func wednesday() time.Time {
	return time.Date(2025, time.March, 12, 15, 4, 0, 0, time.Local)
}

func TestWindowStart(t *testing.T) {
	now := wednesday()

	today := WindowToday.Start(now)
	require.NotNil(t, today)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local), *today)

	// Weeks start on Sunday.
	week := WindowWeek.Start(now)
	require.NotNil(t, week)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.Local), *week)

	month := WindowMonth.Start(now)
	require.NotNil(t, month)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), *month)

	assert.Nil(t, WindowAll.Start(now))
}

func TestWindowStartOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 23, 0, 0, 0, time.Local)
	week := WindowWeek.Start(sunday)
	require.NotNil(t, week)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.Local), *week)
}

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"today", "week", "month", "all"} {
		w, ok := ParseWindow(valid)
		assert.True(t, ok)
		assert.Equal(t, Window(valid), w)
	}
	_, ok := ParseWindow("yesterday")
	assert.False(t, ok)
}

func TestWindowLabel(t *testing.T) {
	assert.Equal(t, "امروز", WindowToday.Label())
	assert.Equal(t, "این هفته", WindowWeek.Label())
	assert.Equal(t, "این ماه", WindowMonth.Label())
	assert.Equal(t, "کل", WindowAll.Label())
}
