package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/domain"
	"github.com/peymanh/kharjbot/internal/expense"
	"github.com/peymanh/kharjbot/internal/logger"
	"github.com/peymanh/kharjbot/internal/metrics"
	"github.com/peymanh/kharjbot/internal/session"
	"github.com/peymanh/kharjbot/internal/storage"
	"github.com/peymanh/kharjbot/internal/telegram/callbacks"
)

const recentListSize = 10

// cbSaveCategory completes the intake flow: the pending amount/description
// is persisted under the tapped category, the budget monitor runs, and the
// category-menu message is edited in place into the save confirmation.
func (b *Bot) cbSaveCategory(c tele.Context) error {
	chatID := c.Chat().ID
	ctx := context.Background()

	state := b.sessions.Get(chatID)
	if state.Step != session.StepWaitCategory {
		return c.Send(textSessionExpired)
	}

	category := callbacks.PayloadString(c)
	if !domain.ValidCategory(category) {
		category = domain.CategoryUncategorized
	}

	saved, err := b.store.CreateExpense(ctx, domain.Expense{
		ChatID:      chatID,
		Amount:      state.Pending.Amount,
		Description: state.Pending.Description,
		Category:    category,
	})
	if err != nil {
		return b.fail(c, textSaveFailed, fmt.Errorf("save expense: %w", err))
	}
	b.sessions.Reset(chatID)

	source := "manual"
	if saved.Description == expense.SMSDescription {
		source = "sms"
	}
	metrics.CountExpense(source)

	// Budget evaluation is best-effort; the expense is already saved.
	status, err := b.monitor.Check(ctx, chatID, saved.Amount)
	if err != nil {
		logger.BOT.Warn("budget check failed",
			slog.String("event", "budget.check"),
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		status = nil
	}

	return c.Edit(textSaved(saved.Amount, saved.Description, saved.Category, status), tele.ModeMarkdown)
}

// cbSetBudget enters WAIT_BUDGET.
func (b *Bot) cbSetBudget(c tele.Context) error {
	b.sessions.StartBudgetWait(c.Chat().ID)
	return c.Send(textBudgetPrompt, tele.ModeMarkdown)
}

// cbLast10 lists the newest expenses as tappable rows.
func (b *Bot) cbLast10(c tele.Context) error {
	chatID := c.Chat().ID
	expenses, err := b.store.ListRecent(context.Background(), chatID, recentListSize)
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("list recent: %w", err))
	}
	if len(expenses) == 0 {
		return c.Send(textNoExpenses)
	}
	return c.Send(textPickItem, tele.ModeMarkdown, expenseListMenu(expenses))
}

// cbExpenseSelect shows the per-record submenu.
func (b *Bot) cbExpenseSelect(c tele.Context) error {
	chatID := c.Chat().ID
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Send(textItemNotFound, tele.ModeMarkdown)
	}

	item, err := b.store.GetExpense(context.Background(), chatID, id)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Send(textItemNotFound, tele.ModeMarkdown)
	}
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("load expense: %w", err))
	}
	return c.Send(textItemSelected(item.Description, item.Amount), tele.ModeMarkdown, expenseEditMenu(item.ID))
}

// cbExpenseAmount enters EDIT_AMOUNT for the selected record.
func (b *Bot) cbExpenseAmount(c tele.Context) error {
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Send(textItemNotFound, tele.ModeMarkdown)
	}
	b.sessions.StartEdit(c.Chat().ID, session.StepEditAmount, id)
	return c.Send(textNewAmountPrompt)
}

// cbExpenseDescription enters EDIT_DESC for the selected record.
func (b *Bot) cbExpenseDescription(c tele.Context) error {
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Send(textItemNotFound, tele.ModeMarkdown)
	}
	b.sessions.StartEdit(c.Chat().ID, session.StepEditDesc, id)
	return c.Send(textNewDescPrompt)
}

// cbExpenseDelete removes the selected record.
func (b *Bot) cbExpenseDelete(c tele.Context) error {
	chatID := c.Chat().ID
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Send(textItemNotFound, tele.ModeMarkdown)
	}

	err = b.store.DeleteExpense(context.Background(), chatID, id)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Send(textItemNotFound, tele.ModeMarkdown)
	}
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("delete expense: %w", err))
	}
	return c.Send(textDeleted, mainMenu())
}
