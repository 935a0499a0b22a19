// Package store is the in-memory data and authorization layer behind every
// page. It owns all collections outright; callers receive copies and mutate
// through the operations here. Admin-gated reads are checked against the
// single current-session pointer. The layer trusts its caller for content
// writes the way a mock of a server-side rule engine must: the real
// enforcement boundary lives in the HTTP layer's admin group.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"chuma.band/site/internal/kv"
)

// sessionKey is the fixed snapshot name for the persisted current user.
const sessionKey = "session"

type Store struct {
	mu sync.RWMutex

	users         []UserProfile
	tracks        []Track
	videos        []Video
	gallery       []GalleryItem
	products      []Product
	settings      Settings
	notifications []Notification
	orders        []Order
	analytics     []AnalyticsPoint

	current *UserProfile

	snapshots *kv.Store
	validate  *validator.Validate
	now       func() time.Time
}

type Options struct {
	// Snapshots is the local persistence area for the session snapshot.
	// Optional; without it sessions live only in memory.
	Snapshots *kv.Store

	// AdminEmail seeds the initial admin account.
	AdminEmail string

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// New builds a seeded store and restores a previously persisted session
// snapshot if one exists. Construct once at process start and thread through
// every handler explicitly.
func New(opts Options) *Store {
	s := &Store{
		validate:  validator.New(),
		snapshots: opts.Snapshots,
		now:       opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.seed(opts.AdminEmail)
	s.restoreSession()

	return s
}

// restoreSession loads the persisted current-user snapshot into memory.
// A convenience shim for refresh-survival, not a security mechanism.
func (s *Store) restoreSession() {
	if s.snapshots == nil {
		return
	}

	raw, ok, err := s.snapshots.Get(sessionKey)
	if err != nil {
		slog.Warn("failed to read session snapshot", "error", err)
		return
	}
	if !ok {
		return
	}

	var u UserProfile
	if err := json.Unmarshal(raw, &u); err != nil {
		slog.Warn("discarding malformed session snapshot", "error", err)
		_ = s.snapshots.Delete(sessionKey)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-register the snapshot user if the in-memory collection lost them.
	if s.findUserByEmailLocked(u.Email) == nil {
		s.users = append(s.users, u)
	}
	restored := *s.findUserByEmailLocked(u.Email)
	s.current = &restored
	slog.Info("restored session", "email", u.Email, "role", u.Role)
}

func (s *Store) persistSession(u *UserProfile) {
	if s.snapshots == nil {
		return
	}
	if u == nil {
		if err := s.snapshots.Delete(sessionKey); err != nil {
			slog.Warn("failed to delete session snapshot", "error", err)
		}
		return
	}
	raw, err := json.Marshal(u)
	if err != nil {
		slog.Warn("failed to encode session snapshot", "error", err)
		return
	}
	if err := s.snapshots.Set(sessionKey, raw); err != nil {
		slog.Warn("failed to write session snapshot", "error", err)
	}
}

// requireAdminLocked gates admin-only operations on the current session.
// Callers must hold at least a read lock.
func (s *Store) requireAdminLocked() error {
	if s.current == nil || s.current.Role != RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}

func (s *Store) checkInput(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
