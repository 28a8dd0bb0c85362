// Package storage implements the Postgres-backed store for expenses and
// per-chat configuration.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/peymanh/kharjbot/internal/domain"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("storage: record not found")

// Store wraps the shared sqlx connection pool.
type Store struct {
	db *sqlx.DB
}

// New creates a Store over an established connection pool.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// CreateExpense inserts a new expense and returns it with the assigned id.
// A zero SpentAt defaults to the current time.
func (s *Store) CreateExpense(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now()
	}
	if e.Category == "" {
		e.Category = domain.CategoryUncategorized
	}
	const q = `
		INSERT INTO expenses (chat_id, amount, description, category, spent_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := s.db.QueryRowxContext(ctx, q, e.ChatID, e.Amount, e.Description, e.Category, e.SpentAt).Scan(&e.ID); err != nil {
		return domain.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	return e, nil
}

// GetExpense fetches a single expense owned by chatID.
func (s *Store) GetExpense(ctx context.Context, chatID, id int64) (domain.Expense, error) {
	const q = `
		SELECT id, chat_id, amount, description, category, spent_at
		FROM expenses WHERE id = $1 AND chat_id = $2`
	var e domain.Expense
	if err := s.db.GetContext(ctx, &e, q, id, chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Expense{}, ErrNotFound
		}
		return domain.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// ListRecent returns up to limit expenses of a chat, newest first.
func (s *Store) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Expense, error) {
	const q = `
		SELECT id, chat_id, amount, description, category, spent_at
		FROM expenses WHERE chat_id = $1
		ORDER BY spent_at DESC LIMIT $2`
	var out []domain.Expense
	if err := s.db.SelectContext(ctx, &out, q, chatID, limit); err != nil {
		return nil, fmt.Errorf("list recent expenses: %w", err)
	}
	return out, nil
}

// ListSince returns expenses of a chat dated at or after since, oldest first.
func (s *Store) ListSince(ctx context.Context, chatID int64, since time.Time) ([]domain.Expense, error) {
	const q = `
		SELECT id, chat_id, amount, description, category, spent_at
		FROM expenses WHERE chat_id = $1 AND spent_at >= $2
		ORDER BY spent_at ASC`
	var out []domain.Expense
	if err := s.db.SelectContext(ctx, &out, q, chatID, since); err != nil {
		return nil, fmt.Errorf("list expenses since: %w", err)
	}
	return out, nil
}

// SumSince totals expense amounts of a chat dated at or after since.
func (s *Store) SumSince(ctx context.Context, chatID int64, since time.Time) (float64, error) {
	const q = `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses WHERE chat_id = $1 AND spent_at >= $2`
	var total float64
	if err := s.db.GetContext(ctx, &total, q, chatID, since); err != nil {
		return 0, fmt.Errorf("sum expenses since: %w", err)
	}
	return total, nil
}

// UpdateAmount replaces the amount of an expense.
func (s *Store) UpdateAmount(ctx context.Context, chatID, id int64, amount float64) error {
	const q = `UPDATE expenses SET amount = $1 WHERE id = $2 AND chat_id = $3`
	res, err := s.db.ExecContext(ctx, q, amount, id, chatID)
	if err != nil {
		return fmt.Errorf("update expense amount: %w", err)
	}
	return requireRow(res)
}

// UpdateDescription replaces the description of an expense.
func (s *Store) UpdateDescription(ctx context.Context, chatID, id int64, description string) error {
	const q = `UPDATE expenses SET description = $1 WHERE id = $2 AND chat_id = $3`
	res, err := s.db.ExecContext(ctx, q, description, id, chatID)
	if err != nil {
		return fmt.Errorf("update expense description: %w", err)
	}
	return requireRow(res)
}

// DeleteExpense removes a single expense owned by chatID.
func (s *Store) DeleteExpense(ctx context.Context, chatID, id int64) error {
	const q = `DELETE FROM expenses WHERE id = $1 AND chat_id = $2`
	res, err := s.db.ExecContext(ctx, q, id, chatID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return requireRow(res)
}

// DeleteSince removes all expenses of a chat dated at or after since and
// reports the removed count. A nil since removes the chat's entire history.
func (s *Store) DeleteSince(ctx context.Context, chatID int64, since *time.Time) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if since == nil {
		res, err = s.db.ExecContext(ctx, `DELETE FROM expenses WHERE chat_id = $1`, chatID)
	} else {
		res, err = s.db.ExecContext(ctx, `DELETE FROM expenses WHERE chat_id = $1 AND spent_at >= $2`, chatID, *since)
	}
	if err != nil {
		return 0, fmt.Errorf("delete expenses since: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
