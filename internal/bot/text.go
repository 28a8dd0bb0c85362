package bot

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/expense"
	"github.com/peymanh/kharjbot/internal/session"
)

// handleText dispatches free text on the chat's current conversation step.
// Slash commands are routed separately by Telebot and never reach here.
func (b *Bot) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	chatID := c.Chat().ID
	state := b.sessions.Get(chatID)

	switch state.Step {
	case session.StepWaitBudget:
		return b.textSetBudget(c, chatID, text)
	case session.StepEditAmount:
		return b.textEditAmount(c, chatID, state.EditID, text)
	case session.StepEditDesc:
		return b.textEditDescription(c, chatID, state.EditID, text)
	default:
		return b.textNewEntry(c, chatID, text)
	}
}

func (b *Bot) textSetBudget(c tele.Context, chatID int64, text string) error {
	budget, ok := expense.ParseAmount(text)
	if !ok {
		// Stay in WAIT_BUDGET so the user can correct the value.
		return c.Send(textInvalidBudget, tele.ModeMarkdown)
	}
	if err := b.store.UpsertBudget(context.Background(), chatID, budget); err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("set budget: %w", err))
	}
	b.sessions.Reset(chatID)
	return c.Send(textBudgetUpdated(budget), tele.ModeMarkdown, mainMenu())
}

func (b *Bot) textEditAmount(c tele.Context, chatID, editID int64, text string) error {
	amount, ok := expense.ParseAmount(text)
	if !ok {
		return c.Send(textInvalidAmount, tele.ModeMarkdown)
	}
	if err := b.store.UpdateAmount(context.Background(), chatID, editID, amount); err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("update amount: %w", err))
	}
	b.sessions.Reset(chatID)
	return c.Send(textAmountChanged(amount), tele.ModeMarkdown, mainMenu())
}

func (b *Bot) textEditDescription(c tele.Context, chatID, editID int64, text string) error {
	if err := b.store.UpdateDescription(context.Background(), chatID, editID, text); err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("update description: %w", err))
	}
	b.sessions.Reset(chatID)
	return c.Send(textDescChanged(text), tele.ModeMarkdown, mainMenu())
}

// textNewEntry runs the intake algorithm: manual "amount description" first,
// bank-SMS extraction as fallback. A parsed entry is parked in the session
// until a category is tapped; starting over supersedes any pending flow.
func (b *Bot) textNewEntry(c tele.Context, chatID int64, text string) error {
	entry, ok := expense.ParseEntry(text)
	if !ok {
		if expense.WantsFormatHint(text) {
			return c.Send(textFormatHint, tele.ModeMarkdown)
		}
		return nil
	}

	b.sessions.StartCategoryWait(chatID, session.Pending{
		Amount:      entry.Amount,
		Description: entry.Description,
	})
	return c.Send(textCategoryPrompt(entry), tele.ModeMarkdown, categoryMenu())
}
