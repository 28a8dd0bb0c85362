package expense

import (
	"regexp"
	"strconv"
	"strings"
)

// Bank withdrawal notifications are recognized in two stages: a keyword gate
// keeps ordinary chat text out, then one of two amount patterns supplies the
// digits. The label pattern ("مبلغ: 12,500" / "Amount: 12,500") always takes
// precedence over a bare digit group followed by a currency word.
var (
	withdrawalRe = regexp.MustCompile(`(?i)برداشت|خرید|پرداخت|انتقال|Withdrawal|Purchase|Payment|Transfer|Debit`)

	labeledAmountRe = regexp.MustCompile(`(?i)(?:مبلغ|Amount)[:\s]*([0-9][0-9,]*)`)
	currencyAmountRe = regexp.MustCompile(`(?i)([0-9][0-9,]*)\s*(?:ریال|Rial)`)
)

// ExtractSMSAmount returns the debit amount found in a bank-style message.
// Text without any withdrawal keyword never matches, no matter how numeric
// it looks.
func ExtractSMSAmount(text string) (float64, bool) {
	if !withdrawalRe.MatchString(text) {
		return 0, false
	}

	var raw string
	if m := labeledAmountRe.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := currencyAmountRe.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else {
		return 0, false
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}
