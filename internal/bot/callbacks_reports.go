package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/domain"
	"github.com/peymanh/kharjbot/internal/expense"
)

// cbReportToday totals spending since local midnight.
func (b *Bot) cbReportToday(c tele.Context) error {
	chatID := c.Chat().ID
	start := WindowToday.Start(b.now())

	total, err := b.store.SumSince(context.Background(), chatID, *start)
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("sum today: %w", err))
	}
	return c.Send(textTodayTotal(total), tele.ModeMarkdown)
}

// cbReportMonth totals spending since the first of the month.
func (b *Bot) cbReportMonth(c tele.Context) error {
	chatID := c.Chat().ID
	start := WindowMonth.Start(b.now())

	total, err := b.store.SumSince(context.Background(), chatID, *start)
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("sum month: %w", err))
	}
	return c.Send(textMonthTotal(total), tele.ModeMarkdown)
}

// cbCharts renders and sends the month's pie and bar charts. A progress
// message precedes rendering since QuickChart round trips are noticeable.
func (b *Bot) cbCharts(c tele.Context) error {
	chatID := c.Chat().ID
	ctx := context.Background()

	expenses, err := b.store.ListSince(ctx, chatID, expense.MonthStart(b.now()))
	if err != nil {
		return b.fail(c, textGenericError, fmt.Errorf("list month: %w", err))
	}
	if len(expenses) == 0 {
		return c.Send(textNoMonthData)
	}

	if err := c.Send(textChartsProgress); err != nil {
		return err
	}

	// The two image steps are independent; a failing pie must not block
	// the bar, and vice versa.
	pieErr := b.sendChart(ctx, c, b.charts.CategoryPie, expenses, captionCategoryPie)
	barErr := b.sendChart(ctx, c, b.charts.DailyBar, expenses, captionDailyBar)
	if pieErr != nil || barErr != nil {
		_ = c.Send(textGenericError, tele.ModeMarkdown)
	}
	return errors.Join(pieErr, barErr)
}

func (b *Bot) sendChart(ctx context.Context, c tele.Context, render func(context.Context, []domain.Expense) ([]byte, error), expenses []domain.Expense, caption string) error {
	png, err := render(ctx, expenses)
	if err != nil {
		return fmt.Errorf("render %s: %w", caption, err)
	}
	if png == nil {
		return nil
	}
	photo := &tele.Photo{File: tele.FromReader(bytes.NewReader(png)), Caption: caption}
	if err := c.Send(photo); err != nil {
		return fmt.Errorf("send %s: %w", caption, err)
	}
	return nil
}

// cbAddHelp shows the static entry-format instructions.
func (b *Bot) cbAddHelp(c tele.Context) error {
	return c.Send(textAddHelp, tele.ModeMarkdown)
}
