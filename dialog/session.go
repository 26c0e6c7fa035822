package dialog

import (
	"sync"
)

// Step is the current position of a user inside the intake dialog.
type Step int

const (
	StepIdle Step = iota
	StepAwaitingLocation
	StepAwaitingPhotos
	StepAwaitingSeverity
	StepAwaitingListCount
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitingLocation:
		return "awaiting_location"
	case StepAwaitingPhotos:
		return "awaiting_photos"
	case StepAwaitingSeverity:
		return "awaiting_severity"
	case StepAwaitingListCount:
		return "awaiting_list_count"
	default:
		return "unknown"
	}
}

// Session is the volatile per-user dialog state. BufferedPhotos holds
// transport message ids not yet committed to storage; it is non-empty only
// while Step == StepAwaitingPhotos.
type Session struct {
	UserID         string
	Step           Step
	ReportID       uint
	BufferedPhotos []string
}

// Store keeps sessions by user id. Implementations are not durable: a
// restart resets every user to idle, which only costs them a "report"
// message to resume.
type Store interface {
	Get(userID string) (Session, bool)
	Set(userID string, session Session)
	Delete(userID string)
}

// MemoryStore is the in-process Store used in production.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(userID string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[userID]
	return session, ok
}

func (m *MemoryStore) Set(userID string, session Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = session
}

func (m *MemoryStore) Delete(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// userLocks serializes event handling per user. Webhook batches are processed
// concurrently, and the transport may redeliver, so two events for the same
// user must not interleave mid-transition.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (u *userLocks) lock(userID string) func() {
	u.mu.Lock()
	l, ok := u.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		u.locks[userID] = l
	}
	u.mu.Unlock()

	l.Lock()
	return l.Unlock
}
