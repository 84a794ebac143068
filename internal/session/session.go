// Package session is the auth/session collaborator: it owns the current user
// record (including the nutrition profile and onboarding flag) and notifies
// subscribers whenever that record changes. Authentication is mocked; any
// credentials are accepted and no password is stored.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/storage"
)

// Session holds the signed-in user and the profile-change subscriber list.
// Subscribers are invoked synchronously, in registration order, after every
// user mutation has been persisted.
type Session struct {
	kv     storage.Store
	logger *slog.Logger
	user   *model.User
	subs   []func(*model.User)
}

// New restores the session from the persisted user key. A malformed record is
// logged, removed and treated as signed-out.
func New(kv storage.Store, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{kv: kv, logger: logger}

	raw, ok, err := kv.Get(storage.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if ok {
		var u model.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.logger.Warn("discarding malformed saved user", slog.String("error", err.Error()))
			if err := kv.Delete(storage.KeyUser); err != nil {
				return nil, fmt.Errorf("clear malformed saved user: %w", err)
			}
		} else {
			s.user = &u
		}
	}
	return s, nil
}

// Current returns the signed-in user, or nil.
func (s *Session) Current() *model.User {
	return s.user
}

// Subscribe registers a callback for user changes. The callback fires on
// login, logout, profile updates and onboarding completion.
func (s *Session) Subscribe(fn func(*model.User)) {
	s.subs = append(s.subs, fn)
}

func (s *Session) notify() {
	for _, fn := range s.subs {
		fn(s.user)
	}
}

func (s *Session) persist() error {
	raw, err := json.Marshal(s.user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Put(storage.KeyUser, raw); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// Register creates a fresh account and signs it in. Onboarding starts
// incomplete; goals stay at defaults until it finishes.
func (s *Session) Register(email, name string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = nameFromEmail(email)
	}
	s.user = &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Subscription: &model.Subscription{Plan: "free", Status: "active"},
	}
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.notify()
	return s.user, nil
}

// Login signs in an existing (simulated) account.
func (s *Session) Login(email string) (*model.User, error) {
	return s.Register(email, nameFromEmail(email))
}

// Logout clears the session and the persisted user record.
func (s *Session) Logout() error {
	if err := s.kv.Delete(storage.KeyUser); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	s.user = nil
	s.notify()
	return nil
}

// UpdateProfile replaces the profile on the signed-in user.
func (s *Session) UpdateProfile(p model.Profile) error {
	if s.user == nil {
		return fmt.Errorf("no user signed in")
	}
	s.user.Profile = &p
	if err := s.persist(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// CompleteOnboarding stores the profile gathered during onboarding and marks
// the flow finished, which unlocks goal recalculation in subscribers.
func (s *Session) CompleteOnboarding(p model.Profile) error {
	if s.user == nil {
		return fmt.Errorf("no user signed in")
	}
	s.user.Profile = &p
	s.user.OnboardingCompleted = true
	if err := s.persist(); err != nil {
		return err
	}
	s.notify()
	return nil
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
