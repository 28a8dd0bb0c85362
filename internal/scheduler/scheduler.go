// Package scheduler runs the monthly budget recap job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/format"
	"github.com/peymanh/kharjbot/internal/logger"
)

// RecapStore is the persistence surface the recap job needs.
type RecapStore interface {
	BudgetedChats(ctx context.Context) ([]int64, error)
	MonthlyBudget(ctx context.Context, chatID int64) (float64, error)
	SumSince(ctx context.Context, chatID int64, since time.Time) (float64, error)
}

// Sender is the outbound message surface; *tele.Bot satisfies it.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Recap sends every budgeted chat a summary of last month's spending on the
// first day of each month at 09:00 local time.
type Recap struct {
	store RecapStore
	bot   Sender
	now   func() time.Time

	sched gocron.Scheduler
}

// NewRecap prepares the recap job without starting it.
func NewRecap(store RecapStore, bot Sender) *Recap {
	return &Recap{store: store, bot: bot, now: time.Now}
}

// Start schedules and starts the monthly job.
func (r *Recap) Start() error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.MonthlyJob(1,
			gocron.NewDaysOfTheMonth(1),
			gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0)),
		),
		gocron.NewTask(r.run),
	)
	if err != nil {
		return fmt.Errorf("schedule recap job: %w", err)
	}

	s.Start()
	r.sched = s
	logger.SCHED.Info("recap job scheduled",
		slog.String("event", "scheduled"),
	)
	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (r *Recap) Stop() {
	if r.sched != nil {
		_ = r.sched.Shutdown()
	}
}

// run composes and sends the recap for every budgeted chat. A failing chat
// is logged and skipped so the rest still get theirs.
func (r *Recap) run() {
	ctx := context.Background()
	chats, err := r.store.BudgetedChats(ctx)
	if err != nil {
		logger.SCHED.Error("recap listing failed",
			slog.String("event", "recap"),
			slog.String("err", err.Error()),
		)
		return
	}

	sent := 0
	for _, chatID := range chats {
		text, err := r.Compose(ctx, chatID)
		if err != nil {
			logger.SCHED.Warn("recap compose failed",
				slog.String("event", "recap"),
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()),
			)
			continue
		}
		if _, err := r.bot.Send(tele.ChatID(chatID), text, tele.ModeMarkdown); err != nil {
			logger.SCHED.Warn("recap send failed",
				slog.String("event", "recap"),
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()),
			)
			continue
		}
		sent++
	}

	logger.SCHED.Info("recap complete",
		slog.String("event", "recap"),
		slog.Int("count", sent),
	)
}

// Compose builds the recap text for one chat: last month's total spending
// against the configured budget.
func (r *Recap) Compose(ctx context.Context, chatID int64) (string, error) {
	budget, err := r.store.MonthlyBudget(ctx, chatID)
	if err != nil {
		return "", fmt.Errorf("read budget: %w", err)
	}

	now := r.now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	spentAll, err := r.store.SumSince(ctx, chatID, lastMonth)
	if err != nil {
		return "", fmt.Errorf("sum last month: %w", err)
	}
	spentThis, err := r.store.SumSince(ctx, chatID, thisMonth)
	if err != nil {
		return "", fmt.Errorf("sum this month: %w", err)
	}
	spent := spentAll - spentThis

	text := fmt.Sprintf("🗓 **گزارش ماه گذشته**\n💰 مجموع هزینه‌ها: %s", format.Money(spent))
	if budget > 0 {
		percent := spent / budget * 100
		text += fmt.Sprintf("\n📊 مصرف بودجه: %%%s", format.Percent(percent))
	}
	return text, nil
}
