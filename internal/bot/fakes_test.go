package bot

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/domain"
	"github.com/peymanh/kharjbot/internal/expense"
	"github.com/peymanh/kharjbot/internal/storage"
)

// fakeContext overrides only the tele.Context methods the handlers touch;
// everything else panics through the embedded nil interface, which keeps
// tests honest about what a handler actually uses.
type fakeContext struct {
	tele.Context

	chat     *tele.Chat
	text     string
	message  *tele.Message
	callback *tele.Callback

	sent      []any
	edited    []any
	responses []*tele.CallbackResponse
	deleted   bool
}

func newFakeContext(chatID int64) *fakeContext {
	return &fakeContext{chat: &tele.Chat{ID: chatID}}
}

func (f *fakeContext) withText(text string) *fakeContext {
	f.text = text
	f.message = &tele.Message{Text: text, Chat: f.chat}
	return f
}

func (f *fakeContext) withCommand(payload string) *fakeContext {
	f.message = &tele.Message{Chat: f.chat, Payload: payload}
	return f
}

func (f *fakeContext) withCallback(key, payload string) *fakeContext {
	data := "\f" + key
	if payload != "" {
		data += "|" + payload
	}
	f.callback = &tele.Callback{Data: data, Message: &tele.Message{Chat: f.chat}}
	return f
}

func (f *fakeContext) Chat() *tele.Chat            { return f.chat }
func (f *fakeContext) Text() string                { return f.text }
func (f *fakeContext) Message() *tele.Message      { return f.message }
func (f *fakeContext) Callback() *tele.Callback    { return f.callback }
func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}
func (f *fakeContext) Delete() error { f.deleted = true; return nil }

func (f *fakeContext) Send(what any, _ ...any) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Edit(what any, _ ...any) error {
	f.edited = append(f.edited, what)
	return nil
}

func (f *fakeContext) lastSentText() string {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if s, ok := f.sent[i].(string); ok {
			return s
		}
	}
	return ""
}

// fakeStore is an in-memory Store recording mutations for assertions.
type fakeStore struct {
	expenses map[int64]domain.Expense
	budgets  map[int64]float64
	nextID   int64

	deletedSince *time.Time
	deleteCount  int64
	err          error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		expenses: make(map[int64]domain.Expense),
		budgets:  make(map[int64]float64),
		nextID:   1,
	}
}

func (s *fakeStore) CreateExpense(_ context.Context, e domain.Expense) (domain.Expense, error) {
	if s.err != nil {
		return domain.Expense{}, s.err
	}
	e.ID = s.nextID
	s.nextID++
	if e.Category == "" {
		e.Category = domain.CategoryUncategorized
	}
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now()
	}
	s.expenses[e.ID] = e
	return e, nil
}

func (s *fakeStore) GetExpense(_ context.Context, chatID, id int64) (domain.Expense, error) {
	e, ok := s.expenses[id]
	if !ok || e.ChatID != chatID {
		return domain.Expense{}, storage.ErrNotFound
	}
	return e, nil
}

func (s *fakeStore) ListRecent(_ context.Context, chatID int64, limit int) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, e := range s.expenses {
		if e.ChatID == chatID {
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) ListSince(_ context.Context, chatID int64, since time.Time) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, e := range s.expenses {
		if e.ChatID == chatID && !e.SpentAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) SumSince(_ context.Context, chatID int64, since time.Time) (float64, error) {
	var total float64
	for _, e := range s.expenses {
		if e.ChatID == chatID && !e.SpentAt.Before(since) {
			total += e.Amount
		}
	}
	return total, nil
}

func (s *fakeStore) UpdateAmount(_ context.Context, chatID, id int64, amount float64) error {
	e, ok := s.expenses[id]
	if !ok || e.ChatID != chatID {
		return storage.ErrNotFound
	}
	e.Amount = amount
	s.expenses[id] = e
	return nil
}

func (s *fakeStore) UpdateDescription(_ context.Context, chatID, id int64, description string) error {
	e, ok := s.expenses[id]
	if !ok || e.ChatID != chatID {
		return storage.ErrNotFound
	}
	e.Description = description
	s.expenses[id] = e
	return nil
}

func (s *fakeStore) DeleteExpense(_ context.Context, chatID, id int64) error {
	e, ok := s.expenses[id]
	if !ok || e.ChatID != chatID {
		return storage.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}

func (s *fakeStore) DeleteSince(_ context.Context, chatID int64, since *time.Time) (int64, error) {
	s.deletedSince = since
	var count int64
	for id, e := range s.expenses {
		if e.ChatID != chatID {
			continue
		}
		if since != nil && e.SpentAt.Before(*since) {
			continue
		}
		delete(s.expenses, id)
		count++
	}
	s.deleteCount = count
	return count, nil
}

func (s *fakeStore) UpsertBudget(_ context.Context, chatID int64, budget float64) error {
	if s.err != nil {
		return s.err
	}
	s.budgets[chatID] = budget
	return nil
}

func (s *fakeStore) MonthlyBudget(_ context.Context, chatID int64) (float64, error) {
	return s.budgets[chatID], nil
}

// fakeMonitor returns a canned budget status.
type fakeMonitor struct {
	status *expense.BudgetStatus
	err    error
}

func (m *fakeMonitor) Check(context.Context, int64, float64) (*expense.BudgetStatus, error) {
	return m.status, m.err
}

// fakeCharts returns canned PNG bytes or errors, recording invocations.
type fakeCharts struct {
	pie, bar       []byte
	pieErr, barErr error

	pieCalled, barCalled bool
}

func (f *fakeCharts) CategoryPie(context.Context, []domain.Expense) ([]byte, error) {
	f.pieCalled = true
	return f.pie, f.pieErr
}

func (f *fakeCharts) DailyBar(context.Context, []domain.Expense) ([]byte, error) {
	f.barCalled = true
	return f.bar, f.barErr
}
