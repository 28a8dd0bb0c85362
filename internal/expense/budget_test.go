package expense

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peymanh/kharjbot/internal/format"
)

type fakeBudgetStore struct {
	budget float64
	total  float64
	since  time.Time
}

func (f *fakeBudgetStore) MonthlyBudget(context.Context, int64) (float64, error) {
	return f.budget, nil
}

func (f *fakeBudgetStore) SumSince(_ context.Context, _ int64, since time.Time) (float64, error) {
	f.since = since
	return f.total, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 20, 15, 30, 0, 0, time.Local)
}

func TestCheckNoBudgetConfigured(t *testing.T) {
	m := NewMonitor(&fakeBudgetStore{budget: 0, total: 900}, fixedNow)
	st, err := m.Check(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestCheckCrossesFifty(t *testing.T) {
	// total moved 40 -> 60 with a new expense of 20
	m := NewMonitor(&fakeBudgetStore{budget: 100, total: 60}, fixedNow)
	st, err := m.Check(context.Background(), 1, 20)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, "60.0", format.Percent(st.Percent))
	assert.Equal(t, thresholds[0].alert, st.Alert)
}

func TestCheckCrossesSeventyFiveNotFifty(t *testing.T) {
	// 60 -> 80: only the 75% message, never a repeat of 50%
	m := NewMonitor(&fakeBudgetStore{budget: 100, total: 80}, fixedNow)
	st, err := m.Check(context.Background(), 1, 20)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, thresholds[1].alert, st.Alert)
}

func TestCheckStraddlingKeepsHighestThreshold(t *testing.T) {
	// 40 -> 95 crosses 50, 75 and 90 at once; highest wins
	m := NewMonitor(&fakeBudgetStore{budget: 100, total: 95}, fixedNow)
	st, err := m.Check(context.Background(), 1, 55)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, thresholds[2].alert, st.Alert)
}

func TestCheckNoNewCrossing(t *testing.T) {
	// already at 110% before this expense; no fresh alert
	m := NewMonitor(&fakeBudgetStore{budget: 100, total: 115}, fixedNow)
	st, err := m.Check(context.Background(), 1, 5)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Empty(t, st.Alert)
	assert.Equal(t, "115.0", format.Percent(st.Percent))
}

func TestCheckSumsFromMonthStart(t *testing.T) {
	store := &fakeBudgetStore{budget: 100, total: 10}
	m := NewMonitor(store, fixedNow)
	_, err := m.Check(context.Background(), 1, 10)
	require.NoError(t, err)

	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, store.since.Equal(want), "got %v", store.since)
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2026, 2, 28, 23, 59, 0, 0, time.Local)
	got := MonthStart(now)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), got)
}
