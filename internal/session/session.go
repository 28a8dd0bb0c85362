// Package session tracks the per-chat conversation state machine.
// State lives in process memory only; a restart drops every pending flow,
// which the bot treats as an expired session.
package session

// Step identifies the conversation step a chat is currently in.
type Step string

const (
	// StepIdle indicates there is no active conversation with the chat.
	StepIdle Step = "idle"
	// StepWaitCategory awaits a category tap for a parsed amount.
	StepWaitCategory Step = "wait_category"
	// StepWaitBudget awaits a numeric monthly budget.
	StepWaitBudget Step = "wait_budget"
	// StepEditAmount awaits a replacement amount for a stored expense.
	StepEditAmount Step = "edit_amount"
	// StepEditDesc awaits a replacement description for a stored expense.
	StepEditDesc Step = "edit_desc"
)

// Pending is the amount/description pair held while awaiting a category.
type Pending struct {
	Amount      float64
	Description string
}

// Session is the state record of one chat. At most one pending flow exists
// per chat; starting a new flow supersedes any incomplete one.
type Session struct {
	Step    Step
	Pending Pending // valid in StepWaitCategory
	EditID  int64   // valid in StepEditAmount / StepEditDesc
}

// Manager owns one session per chat identity.
type Manager interface {
	// Get returns the chat's session, defaulting to an idle one.
	Get(chatID int64) Session
	// StartCategoryWait stores the pending expense and enters StepWaitCategory.
	StartCategoryWait(chatID int64, p Pending)
	// StartBudgetWait enters StepWaitBudget.
	StartBudgetWait(chatID int64)
	// StartEdit stores the edit target and enters the given edit step.
	StartEdit(chatID int64, step Step, expenseID int64)
	// Reset returns the chat to StepIdle and clears any payload.
	Reset(chatID int64)
	// Lock serializes update handling for one chat; the returned func unlocks.
	Lock(chatID int64) func()
}
