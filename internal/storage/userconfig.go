package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertBudget creates or overwrites the monthly budget of a chat.
func (s *Store) UpsertBudget(ctx context.Context, chatID int64, budget float64) error {
	const q = `
		INSERT INTO user_configs (chat_id, monthly_budget)
		VALUES ($1, $2)
		ON CONFLICT (chat_id) DO UPDATE SET monthly_budget = EXCLUDED.monthly_budget`
	if _, err := s.db.ExecContext(ctx, q, chatID, budget); err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

// MonthlyBudget returns the configured budget of a chat; 0 when none is set.
func (s *Store) MonthlyBudget(ctx context.Context, chatID int64) (float64, error) {
	const q = `SELECT monthly_budget FROM user_configs WHERE chat_id = $1`
	var budget float64
	if err := s.db.GetContext(ctx, &budget, q, chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get budget: %w", err)
	}
	return budget, nil
}

// BudgetedChats lists chat ids that have a positive monthly budget.
func (s *Store) BudgetedChats(ctx context.Context) ([]int64, error) {
	const q = `SELECT chat_id FROM user_configs WHERE monthly_budget > 0 ORDER BY chat_id`
	var out []int64
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list budgeted chats: %w", err)
	}
	return out, nil
}
