package bot

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/telegram/callbacks"
)

// cbClearMenu opens the destructive-window chooser.
func (b *Bot) cbClearMenu(c tele.Context) error {
	return c.Send(textClearMenu, tele.ModeMarkdown, clearWindowMenu())
}

// cbClearAsk edits the chooser into an are-you-sure prompt for the picked
// window. No rows are touched until the second confirmation.
func (b *Bot) cbClearAsk(c tele.Context) error {
	w, ok := ParseWindow(callbacks.PayloadString(c))
	if !ok {
		return c.Send(textGenericError)
	}
	return c.Edit(textClearConfirm(w), tele.ModeMarkdown, clearConfirmMenu(w))
}

// cbClearRun performs the confirmed windowed deletion and reports the count.
func (b *Bot) cbClearRun(c tele.Context) error {
	chatID := c.Chat().ID
	w, ok := ParseWindow(callbacks.PayloadString(c))
	if !ok {
		return c.Send(textGenericError)
	}

	count, err := b.store.DeleteSince(context.Background(), chatID, w.Start(b.now()))
	if err != nil {
		return b.fail(c, textClearFailed, fmt.Errorf("clear %s: %w", w, err))
	}
	return c.Send(textCleared(count, w), tele.ModeMarkdown, mainMenu())
}

// cbClearCancel deletes the prompt message and confirms the abort.
func (b *Bot) cbClearCancel(c tele.Context) error {
	_ = c.Delete()
	return c.Send(textCancelled, mainMenu())
}
