// Package expense holds the conversation-free core of the tracker: the
// free-text intake parser, the bank-SMS amount extractor, and the budget
// monitor.
package expense

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultDescription is used when a manual entry carries no description.
	DefaultDescription = "عمومی"
	// SMSDescription marks expenses imported from a bank notification.
	SMSDescription = "ثبت خودکار پیامک بانک"

	// hintMaxRunes bounds the inputs that earn a format-hint reply; longer
	// unparseable text (likely a forwarded message) is ignored silently.
	hintMaxRunes = 20
)

// Entry is a parsed expense candidate awaiting a category.
type Entry struct {
	Amount       float64
	Description  string
	AutoDetected bool
}

// ParseAmount parses a positive decimal, tolerating thousands separators.
func ParseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseBudget parses a non-negative decimal, tolerating thousands
// separators. Zero is a valid budget and disables threshold alerts.
func ParseBudget(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseEntry classifies free text as an expense entry. Manual entries
// ("amount description") are preferred; bank-SMS extraction is the fallback.
func ParseEntry(text string) (Entry, bool) {
	first, rest := splitFirstWord(text)

	if amount, ok := ParseAmount(first); ok {
		desc := strings.TrimSpace(rest)
		if desc == "" {
			desc = DefaultDescription
		}
		return Entry{Amount: amount, Description: desc}, true
	}

	if amount, ok := ExtractSMSAmount(text); ok {
		return Entry{Amount: amount, Description: SMSDescription, AutoDetected: true}, true
	}

	return Entry{}, false
}

// WantsFormatHint reports whether unparseable input is short enough that the
// user probably attempted a manual entry and deserves a hint.
func WantsFormatHint(text string) bool {
	return utf8.RuneCountInString(text) < hintMaxRunes
}

func splitFirstWord(text string) (string, string) {
	text = strings.TrimSpace(text)
	i := strings.IndexFunc(text, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' })
	if i < 0 {
		return text, ""
	}
	return text[:i], text[i+1:]
}
