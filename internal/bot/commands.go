package bot

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/expense"
)

// handleStart serves /start and /help: the session is reset so the chat
// always lands in a clean state, then the welcome text with the main menu.
func (b *Bot) handleStart(c tele.Context) error {
	b.sessions.Reset(c.Chat().ID)
	return c.Send(textWelcome, tele.ModeMarkdown, mainMenu())
}

// handleBudgetCommand serves /budget. With a numeric argument the budget is
// set immediately; bare /budget reports the current value with guidance.
func (b *Bot) handleBudgetCommand(c tele.Context) error {
	chatID := c.Chat().ID
	ctx := context.Background()

	if arg := strings.TrimSpace(c.Message().Payload); arg != "" {
		// Zero is accepted here to un-set the budget; the conversational
		// flow keeps requiring a positive amount.
		budget, ok := expense.ParseBudget(arg)
		if !ok {
			return c.Send(textInvalidBudget, tele.ModeMarkdown)
		}
		if err := b.store.UpsertBudget(ctx, chatID, budget); err != nil {
			return b.fail(c, textGenericError, fmt.Errorf("set budget: %w", err))
		}
		return c.Send(textBudgetSet(budget), tele.ModeMarkdown)
	}

	budget, err := b.store.MonthlyBudget(ctx, chatID)
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("read budget: %w", err))
	}
	if budget > 0 {
		return c.Send(textBudgetCurrent(budget), tele.ModeMarkdown)
	}
	return c.Send(textBudgetUnset(), tele.ModeMarkdown)
}
