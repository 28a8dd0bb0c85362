package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryManual(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		amount   float64
		desc     string
		auto     bool
	}{
		{"amount and description", "150 ناهار", 150, "ناهار", false},
		{"multi word description", "50000 ناهار با علی", 50000, "ناهار با علی", false},
		{"bare amount", "200", 200, DefaultDescription, false},
		{"thousands separators", "12,500 taxi", 12500, "taxi", false},
		{"decimal amount", "99.5 coffee", 99.5, "coffee", false},
		{"leading whitespace", "  300 snack", 300, "snack", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := ParseEntry(tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.amount, e.Amount)
			assert.Equal(t, tc.desc, e.Description)
			assert.Equal(t, tc.auto, e.AutoDetected)
		})
	}
}

func TestParseEntrySMSFallback(t *testing.T) {
	e, ok := ParseEntry("برداشت از حساب\nمبلغ: 12,500\nمانده: 400,000")
	require.True(t, ok)
	assert.Equal(t, 12500.0, e.Amount)
	assert.Equal(t, SMSDescription, e.Description)
	assert.True(t, e.AutoDetected)
}

func TestParseEntryRejects(t *testing.T) {
	cases := []string{
		"hello there",
		"-50 refund",
		"0 nothing",
		"abc 123",
		"",
	}
	for _, in := range cases {
		_, ok := ParseEntry(in)
		assert.False(t, ok, "input %q must not parse", in)
	}
}

func TestWantsFormatHint(t *testing.T) {
	assert.True(t, WantsFormatHint("hi"))
	assert.True(t, WantsFormatHint("قیمت چنده"))
	assert.False(t, WantsFormatHint("this is a fairly long forwarded message that should stay silent"))
}

func TestParseAmount(t *testing.T) {
	v, ok := ParseAmount("5,000,000")
	require.True(t, ok)
	assert.Equal(t, 5000000.0, v)

	_, ok = ParseAmount("abc")
	assert.False(t, ok)
	_, ok = ParseAmount("-10")
	assert.False(t, ok)
	_, ok = ParseAmount("0")
	assert.False(t, ok)
	_, ok = ParseAmount("")
	assert.False(t, ok)
}

func TestParseBudgetAllowsZero(t *testing.T) {
	v, ok := ParseBudget("0")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	v, ok = ParseBudget("1,500,000")
	require.True(t, ok)
	assert.Equal(t, 1500000.0, v)

	_, ok = ParseBudget("-5")
	assert.False(t, ok)
	_, ok = ParseBudget("abc")
	assert.False(t, ok)
}
