package store

import (
	"context"
	"fmt"
	"strings"
)

type loginParams struct {
	Email string `validate:"required,email"`
}

// Login looks a user up by email, auto-provisioning an account on first
// sight. The provisioned role is admin when the email contains the literal
// substring "admin" - a stand-in for a real identity provider, kept behind
// this one method so it can be replaced wholesale.
//
// Banned accounts fail with ErrAccountSuspended and leave the session
// untouched. On success the current-session pointer is set and snapshotted.
func (s *Store) Login(ctx context.Context, email string) (UserProfile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := s.checkInput(loginParams{Email: email}); err != nil {
		return UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserByEmailLocked(email)
	if user == nil {
		role := RoleUser
		if strings.Contains(email, "admin") {
			role = RoleAdmin
		}
		name, _, _ := strings.Cut(email, "@")
		provisioned := UserProfile{
			ID:       newID("u"),
			Name:     name,
			Email:    email,
			Role:     role,
			Status:   StatusActive,
			Cart:     []string{},
			JoinedAt: s.now(),
		}
		s.users = append(s.users, provisioned)
		user = &s.users[len(s.users)-1]

		// Exactly one admin-facing notification per plain-user signup.
		if role == RoleUser {
			s.appendNotificationLocked("info", fmt.Sprintf("New user registered: %s", name))
		}
	}

	if user.Status == StatusBanned {
		return UserProfile{}, ErrAccountSuspended
	}

	session := *user
	s.current = &session
	s.persistSession(&session)
	return session, nil
}

// Logout clears the session unconditionally; it always succeeds.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.persistSession(nil)
}

// CurrentUser returns the logged-in profile, or false when nobody is.
func (s *Store) CurrentUser() (UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return UserProfile{}, false
	}
	return *s.current, true
}

// Users lists every profile. Admin only.
func (s *Store) Users(ctx context.Context) ([]UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireAdminLocked(); err != nil {
		return nil, err
	}
	out := make([]UserProfile, len(s.users))
	copy(out, s.users)
	return out, nil
}

// SetUserStatus transitions an account between active and banned.
func (s *Store) SetUserStatus(ctx context.Context, id string, status Status) error {
	if status != StatusActive && status != StatusBanned {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// SetUserRole transitions an account between user and admin.
func (s *Store) SetUserRole(ctx context.Context, id string, role Role) error {
	if role != RoleAdmin && role != RoleUser {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) findUserByEmailLocked(email string) *UserProfile {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return &s.users[i]
		}
	}
	return nil
}
