// Package domain defines the persisted entities of the expense tracker.
package domain

import "time"

// Expense is a single recorded spending of a chat.
type Expense struct {
	ID          int64     `db:"id"`
	ChatID      int64     `db:"chat_id"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	SpentAt     time.Time `db:"spent_at"`
}

// UserConfig stores per-chat settings; at most one row per chat.
type UserConfig struct {
	ChatID int64 `db:"chat_id"`
	// MonthlyBudget of 0 means no budget enforced.
	MonthlyBudget float64 `db:"monthly_budget"`
}

// CategoryUncategorized is assigned when no category was chosen.
const CategoryUncategorized = "Uncategorized"

// Categories is the fixed set offered in the category keyboard.
var Categories = []string{
	"Food",
	"Transport",
	"Bills",
	"Shopping",
	"Health",
	"Hobbies",
	"Others",
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
