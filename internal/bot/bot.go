// Package bot implements the conversation handlers: commands, free-text
// intake, and the callback dispatch table.
package bot

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/domain"
	"github.com/peymanh/kharjbot/internal/expense"
	"github.com/peymanh/kharjbot/internal/logger"
	"github.com/peymanh/kharjbot/internal/metrics"
	"github.com/peymanh/kharjbot/internal/session"
	"github.com/peymanh/kharjbot/internal/telegram"
	"github.com/peymanh/kharjbot/internal/telegram/callbacks"
)

// Store is the persistence surface the handlers depend on.
// *storage.Store satisfies it; tests substitute a fake.
type Store interface {
	CreateExpense(ctx context.Context, e domain.Expense) (domain.Expense, error)
	GetExpense(ctx context.Context, chatID, id int64) (domain.Expense, error)
	ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Expense, error)
	ListSince(ctx context.Context, chatID int64, since time.Time) ([]domain.Expense, error)
	SumSince(ctx context.Context, chatID int64, since time.Time) (float64, error)
	UpdateAmount(ctx context.Context, chatID, id int64, amount float64) error
	UpdateDescription(ctx context.Context, chatID, id int64, description string) error
	DeleteExpense(ctx context.Context, chatID, id int64) error
	DeleteSince(ctx context.Context, chatID int64, since *time.Time) (int64, error)
	UpsertBudget(ctx context.Context, chatID int64, budget float64) error
	MonthlyBudget(ctx context.Context, chatID int64) (float64, error)
}

// BudgetChecker evaluates budget consumption after a saved expense.
type BudgetChecker interface {
	Check(ctx context.Context, chatID int64, newAmount float64) (*expense.BudgetStatus, error)
}

// ChartRenderer renders report images; (nil, nil) means nothing to draw.
type ChartRenderer interface {
	CategoryPie(ctx context.Context, expenses []domain.Expense) ([]byte, error)
	DailyBar(ctx context.Context, expenses []domain.Expense) ([]byte, error)
}

// Bot carries the handler dependencies.
type Bot struct {
	store    Store
	sessions session.Manager
	monitor  BudgetChecker
	charts   ChartRenderer
	now      func() time.Time
}

// New assembles the handler set.
func New(store Store, sessions session.Manager, monitor BudgetChecker, charts ChartRenderer) *Bot {
	return &Bot{
		store:    store,
		sessions: sessions,
		monitor:  monitor,
		charts:   charts,
		now:      time.Now,
	}
}

// Register fills the registry with commands and callback handlers and
// returns the routes to install on the bot.
func (b *Bot) Register(reg *telegram.Registry) []telegram.Route {
	reg.RegisterCommand("/start", telegram.Command{
		Handler:     b.handleStart,
		Description: "منوی اصلی",
	})
	reg.RegisterCommand("/help", telegram.Command{
		Handler:     b.handleStart,
		Description: "نمایش راهنما",
	})
	reg.RegisterCommand("/budget", telegram.Command{
		Handler:     b.handleBudgetCommand,
		Description: "تنظیم سقف بودجه",
	})

	for key, handler := range map[string]tele.HandlerFunc{
		cbCategory:    b.cbSaveCategory,
		cbSetBudget:   b.cbSetBudget,
		cbLast10:      b.cbLast10,
		cbExpenseSel:  b.cbExpenseSelect,
		cbExpenseAmt:  b.cbExpenseAmount,
		cbExpenseDesc: b.cbExpenseDescription,
		cbExpenseDel:  b.cbExpenseDelete,
		cbClearMenu:   b.cbClearMenu,
		cbClearAsk:    b.cbClearAsk,
		cbClearRun:    b.cbClearRun,
		cbClearCancel: b.cbClearCancel,
		cbReportToday: b.cbReportToday,
		cbReportMonth: b.cbReportMonth,
		cbCharts:      b.cbCharts,
		cbAddHelp:     b.cbAddHelp,
	} {
		if err := reg.RegisterCallback(key, handler); err != nil {
			logger.BOT.Warn("callback registration failed",
				slog.String("event", "register.callback"),
				slog.String("cb_key", key),
				slog.String("err", err.Error()),
			)
		}
	}

	reg.SetCallbackNotFound(func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: textUnsupportedAction})
	})

	routes := []telegram.Route{
		{Endpoint: tele.OnText, Handler: b.observe("text", b.handleText)},
		{Endpoint: tele.OnCallback, Handler: b.callbackRoute(reg)},
	}
	for name, cmd := range reg.Commands() {
		routes = append(routes, telegram.Route{
			Endpoint: name,
			Handler:  b.observe("command."+name[1:], cmd.Handler),
		})
	}
	return routes
}

// callbackRoute acknowledges the callback and dispatches it through the
// registry's tag table; unknown keys hit the registry fallback.
func (b *Bot) callbackRoute(reg *telegram.Registry) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Callback() == nil {
			return nil
		}
		_ = c.Respond()

		key := callbacks.CallbackKey(c)
		handler, ok := reg.GetCallback(key)
		if !ok {
			return b.observe("callback.unknown", reg.CallbackNotFound())(c)
		}
		return b.observe("callback."+key, handler)(c)
	}
}

// observe wraps a handler with a completion log line and metrics.
func (b *Bot) observe(name string, h tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		err := h(c)
		metrics.ObserveHandler(name, time.Since(start).Seconds(), err)

		attrs := []slog.Attr{
			slog.String("handler", name),
			slog.String("status", logger.Status(err)),
			slog.Duration("duration", logger.RoundMS(logger.Took(start))),
		}
		if chat := c.Chat(); chat != nil {
			attrs = append(attrs, slog.Int64("chat_id", chat.ID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("err", err.Error()))
			logger.BOT.LogAttrs(context.Background(), slog.LevelError, "handler.done", attrs...)
		} else {
			logger.BOT.LogAttrs(context.Background(), slog.LevelDebug, "handler.done", attrs...)
		}
		return err
	}
}

// fail reports an operation failure to the user, then propagates the error.
func (b *Bot) fail(c tele.Context, userText string, err error) error {
	_ = c.Send(userText, tele.ModeMarkdown)
	return err
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
