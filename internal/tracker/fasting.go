package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IcodeAlpha/profoodie/internal/model"
)

// Fasting sessions live in memory only; they are lost when the process exits.

// ActiveFast returns the currently running session, or nil.
func (s *Store) ActiveFast() *model.FastingSession {
	for i := range s.fasting {
		if s.fasting[i].IsActive {
			session := s.fasting[i]
			return &session
		}
	}
	return nil
}

// StartFast begins a new session. Only one session may be active at a time.
func (s *Store) StartFast(targetHours float64) (model.FastingSession, error) {
	if targetHours <= 0 {
		return model.FastingSession{}, fmt.Errorf("target hours must be > 0")
	}
	if s.ActiveFast() != nil {
		return model.FastingSession{}, fmt.Errorf("a fasting session is already active")
	}
	session := model.FastingSession{
		ID:          uuid.NewString(),
		StartTime:   time.Now(),
		TargetHours: targetHours,
		IsActive:    true,
	}
	s.fasting = append(s.fasting, session)
	return session, nil
}

// EndFast completes the active session and returns it.
func (s *Store) EndFast() (model.FastingSession, error) {
	for i := range s.fasting {
		if s.fasting[i].IsActive {
			now := time.Now()
			s.fasting[i].EndTime = &now
			s.fasting[i].IsActive = false
			return s.fasting[i], nil
		}
	}
	return model.FastingSession{}, fmt.Errorf("no active fasting session")
}

// CancelFast discards the active session without recording it.
func (s *Store) CancelFast() error {
	for i := range s.fasting {
		if s.fasting[i].IsActive {
			s.fasting = append(s.fasting[:i], s.fasting[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no active fasting session")
}

// FastingHistory returns completed sessions in start order.
func (s *Store) FastingHistory() []model.FastingSession {
	out := make([]model.FastingSession, 0)
	for _, session := range s.fasting {
		if !session.IsActive {
			out = append(out, session)
		}
	}
	return out
}

// FastProgress reports elapsed time and percentage toward the target for the
// active session at the given instant. The percentage is capped at 100.
func (s *Store) FastProgress(at time.Time) (time.Duration, float64, bool) {
	active := s.ActiveFast()
	if active == nil {
		return 0, 0, false
	}
	elapsed := at.Sub(active.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	pct := elapsed.Minutes() / (active.TargetHours * 60) * 100
	if pct > 100 {
		pct = 100
	}
	return elapsed, pct, true
}
