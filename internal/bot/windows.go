package bot

import "time"

// Window names a reporting/deletion time window.
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// ParseWindow maps a callback payload to a Window.
func ParseWindow(s string) (Window, bool) {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth, WindowAll:
		return Window(s), true
	}
	return "", false
}

// Start returns the window's inclusive lower bound at local midnight.
// WindowAll has no bound and returns nil. Weeks start on Sunday.
func (w Window) Start(now time.Time) *time.Time {
	var start time.Time
	switch w {
	case WindowToday:
		start = midnight(now)
	case WindowWeek:
		start = midnight(now.AddDate(0, 0, -int(now.Weekday())))
	case WindowMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return nil
	}
	return &start
}

// Label returns the Persian window name used in deletion summaries.
func (w Window) Label() string {
	switch w {
	case WindowToday:
		return "امروز"
	case WindowWeek:
		return "این هفته"
	case WindowMonth:
		return "این ماه"
	default:
		return "کل"
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
