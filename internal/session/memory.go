package session

import "sync"

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]Session

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

// NewMemoryManager constructs the in-memory Manager used in production and tests.
func NewMemoryManager() Manager {
	return &memoryManager{
		sessions: make(map[int64]Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Get returns the session for a chat if it exists, otherwise an idle session.
func (m *memoryManager) Get(chatID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[chatID]; ok {
		return s
	}
	return Session{Step: StepIdle}
}

// StartCategoryWait overwrites any prior flow with a fresh category wait.
func (m *memoryManager) StartCategoryWait(chatID int64, p Pending) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = Session{Step: StepWaitCategory, Pending: p}
}

// StartBudgetWait overwrites any prior flow with a budget wait.
func (m *memoryManager) StartBudgetWait(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = Session{Step: StepWaitBudget}
}

// StartEdit overwrites any prior flow with an edit wait for expenseID.
func (m *memoryManager) StartEdit(chatID int64, step Step, expenseID int64) {
	if step != StepEditAmount && step != StepEditDesc {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = Session{Step: step, EditID: expenseID}
}

// Reset returns the chat to idle.
func (m *memoryManager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = Session{Step: StepIdle}
}

// Lock acquires the chat's mutex, creating it on first use. Updates for one
// chat are handled in arrival order; distinct chats interleave freely.
func (m *memoryManager) Lock(chatID int64) func() {
	m.locksMu.Lock()
	l, ok := m.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[chatID] = l
	}
	m.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}
