package expense

import (
	"context"
	"fmt"
	"time"
)

// BudgetStore is the slice of the storage layer the monitor reads from.
type BudgetStore interface {
	MonthlyBudget(ctx context.Context, chatID int64) (float64, error)
	SumSince(ctx context.Context, chatID int64, since time.Time) (float64, error)
}

// BudgetStatus reports budget consumption after an expense was persisted.
type BudgetStatus struct {
	// Percent is month-to-date spend as a percentage of the budget.
	Percent float64
	// Alert carries the threshold-crossing message, if one was crossed.
	Alert string
}

// thresholds are walked in ascending order; when a single expense straddles
// several at once, later assignments overwrite earlier ones so the highest
// newly-crossed threshold supplies the alert.
var thresholds = []struct {
	percent float64
	alert   string
}{
	{50, "⚠️ **هشدار:** شما از ۵۰٪ بودجه ماهانه خود عبور کردید."},
	{75, "⚠️ **هشدار:** شما از ۷۵٪ بودجه ماهانه خود عبور کردید."},
	{90, "🚨 **خطر:** شما ۹۰٪ بودجه خود را مصرف کرده‌اید!"},
	{100, "⛔ **بحرانی:** سقف بودجه ماهانه رد شد!"},
}

// Monitor evaluates budget consumption for chats with a configured budget.
type Monitor struct {
	store BudgetStore
	now   func() time.Time
}

// NewMonitor creates a Monitor; now may be nil to use time.Now.
func NewMonitor(store BudgetStore, now func() time.Time) *Monitor {
	if now == nil {
		now = time.Now
	}
	return &Monitor{store: store, now: now}
}

// Check recomputes month-to-date spend after newAmount was persisted and
// reports the percentage used plus an alert when a threshold was just
// crossed. It returns (nil, nil) when the chat has no budget configured.
// Check performs no writes.
func (m *Monitor) Check(ctx context.Context, chatID int64, newAmount float64) (*BudgetStatus, error) {
	budget, err := m.store.MonthlyBudget(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("budget lookup: %w", err)
	}
	if budget <= 0 {
		return nil, nil
	}

	now := m.now()
	total, err := m.store.SumSince(ctx, chatID, MonthStart(now))
	if err != nil {
		return nil, fmt.Errorf("month-to-date sum: %w", err)
	}

	currentPercent := total / budget * 100
	previousPercent := (total - newAmount) / budget * 100

	status := &BudgetStatus{Percent: currentPercent}
	for _, t := range thresholds {
		if previousPercent < t.percent && t.percent <= currentPercent {
			status.Alert = t.alert
		}
	}
	return status, nil
}

// MonthStart returns local midnight of the first day of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
