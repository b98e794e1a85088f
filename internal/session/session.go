// Package session holds the current authenticated identity for the
// lifetime of the process, mirrored into a persisted single-record slot so
// it survives restarts.
package session

import (
	"context"
	"sync"

	"internconnect/internal/domain"
	"internconnect/internal/store"
)

// CurrentKey is the storage key of the persisted current-session record.
const CurrentKey = "internconnect_session"

// Manager owns the process-wide current user. The derived role flags are
// computed from the current role on every read, never stored, so they
// cannot drift from the identity they describe.
type Manager struct {
	mu      sync.RWMutex
	current *domain.SessionUser
	slot    *store.Slot[domain.SessionUser]
}

func NewManager(kv store.KV) *Manager {
	return &Manager{slot: store.NewSlot[domain.SessionUser](kv, CurrentKey)}
}

// Restore loads the persisted session record, if any. Called once at
// startup before the manager is read.
func (m *Manager) Restore(ctx context.Context) error {
	saved, err := m.slot.Get(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.current = saved
	m.mu.Unlock()
	return nil
}

// Login sets and persists the current user.
func (m *Manager) Login(ctx context.Context, user domain.SessionUser) error {
	if err := m.slot.Set(ctx, user); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return nil
}

// Logout clears the current user and removes the persisted record.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.slot.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}

// Current returns a copy of the logged-in user, or nil.
func (m *Manager) Current() *domain.SessionUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	user := *m.current
	return &user
}

func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// IsRecruiter reports whether the current user may manage listings.
func (m *Manager) IsRecruiter() bool {
	user := m.Current()
	return user != nil && (user.Role == domain.RoleRecruiter || user.Role == domain.RoleAdmin)
}

// IsApplicant reports whether the current user browses as an applicant.
func (m *Manager) IsApplicant() bool {
	user := m.Current()
	return user != nil && (user.Role == domain.RoleApplicant || user.Role == domain.RoleUser)
}
