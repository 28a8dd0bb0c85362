package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/domain"
	"github.com/peymanh/kharjbot/internal/format"
	"github.com/peymanh/kharjbot/internal/telegram/keyboard"
)

// Callback keys of the dispatch table. Keyboards and handler registration
// must agree on these.
const (
	cbCategory    = "cat"
	cbSetBudget   = "set_budget"
	cbLast10      = "last10"
	cbExpenseSel  = "exp_sel"
	cbExpenseAmt  = "exp_amt"
	cbExpenseDesc = "exp_desc"
	cbExpenseDel  = "exp_del"
	cbClearMenu   = "clear_menu"
	cbClearAsk    = "clear_ask"
	cbClearRun    = "clear_run"
	cbClearCancel = "clear_cancel"
	cbReportToday = "report_today"
	cbReportMonth = "report_month"
	cbCharts      = "charts"
	cbAddHelp     = "add_help"
)

var categoryLabels = map[string]string{
	"Food":      "🍔 Food",
	"Transport": "🚕 Transport",
	"Bills":     "🏠 Bills",
	"Shopping":  "🛍 Shopping",
	"Health":    "🍎 Health & hygiene",
	"Hobbies":   "🎮 Hobbies",
	"Others":    "Others",
}

func mainMenu() *tele.ReplyMarkup {
	return keyboard.InlineRows(
		[]keyboard.InlineBtn{
			{Text: "➕ افزودن هزینه", Unique: cbAddHelp},
			{Text: "💰 تعیین بودجه", Unique: cbSetBudget},
		},
		[]keyboard.InlineBtn{
			{Text: "📅 امروز", Unique: cbReportToday},
			{Text: "🗓 این ماه", Unique: cbReportMonth},
		},
		[]keyboard.InlineBtn{
			{Text: "📈 ۱۰ مورد آخر", Unique: cbLast10},
			{Text: "📊 گزارش تصویری", Unique: cbCharts},
		},
		[]keyboard.InlineBtn{
			{Text: "🗑 حذف/پاکسازی", Unique: cbClearMenu},
		},
	)
}

func categoryMenu() *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		label := categoryLabels[cat]
		if label == "" {
			label = cat
		}
		buttons = append(buttons, keyboard.InlineBtn{Text: label, Unique: cbCategory, Data: cat})
	}
	return keyboard.InlineChunked(buttons, 2)
}

func expenseListMenu(expenses []domain.Expense) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []keyboard.InlineBtn{{
			Text:   format.Money(e.Amount) + " - " + e.Description,
			Unique: cbExpenseSel,
			Data:   formatID(e.ID),
		}})
	}
	return keyboard.InlineRows(rows...)
}

func expenseEditMenu(id int64) *tele.ReplyMarkup {
	payload := formatID(id)
	return keyboard.InlineRows(
		[]keyboard.InlineBtn{
			{Text: "✏️ مبلغ", Unique: cbExpenseAmt, Data: payload},
			{Text: "📝 توضیحات", Unique: cbExpenseDesc, Data: payload},
		},
		[]keyboard.InlineBtn{
			{Text: "🗑 حذف کردن", Unique: cbExpenseDel, Data: payload},
		},
	)
}

func clearWindowMenu() *tele.ReplyMarkup {
	return keyboard.InlineRows(
		[]keyboard.InlineBtn{
			{Text: "📅 امروز", Unique: cbClearAsk, Data: string(WindowToday)},
			{Text: "🗓 این هفته", Unique: cbClearAsk, Data: string(WindowWeek)},
		},
		[]keyboard.InlineBtn{
			{Text: "📆 این ماه", Unique: cbClearAsk, Data: string(WindowMonth)},
			{Text: "🚨 همه چیز (پاکسازی کامل)", Unique: cbClearAsk, Data: string(WindowAll)},
		},
		[]keyboard.InlineBtn{
			{Text: "🔙 انصراف", Unique: cbClearCancel},
		},
	)
}

func clearConfirmMenu(w Window) *tele.ReplyMarkup {
	return keyboard.InlineRows(
		[]keyboard.InlineBtn{{Text: "✅ بله، حذف کن", Unique: cbClearRun, Data: string(w)}},
		[]keyboard.InlineBtn{{Text: "🔙 انصراف", Unique: cbClearCancel}},
	)
}
