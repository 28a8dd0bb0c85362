package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoneyGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{12500, "12,500"},
		{1234567, "1,234,567"},
		{99.5, "99.50"},
		{-50000, "-50,000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Money(tc.in), "Money(%v)", tc.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "60.0", Percent(60))
	assert.Equal(t, "87.5", Percent(87.5))
	assert.Equal(t, "33.3", Percent(100.0/3))
}

func TestDate(t *testing.T) {
	d := time.Date(2026, 8, 30, 17, 4, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30", Date(d))
}
