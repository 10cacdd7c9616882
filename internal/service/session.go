package service

import (
	"context"
	"fmt"
	"time"

	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/domain"
	"fotolia/catalog/internal/state"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Login opens an authenticated session needed by the user operations.
func (s *Service) Login(ctx context.Context, login, password string) error {
	response, err := s.caller.Call(ctx, "loginUser", login, password)
	if err != nil {
		return err
	}

	record, _ := client.AsRecord(response)
	sessionID := cast.ToString(record["session_id"])
	if sessionID == "" {
		return fmt.Errorf("%w: no session opened for %s", domain.ErrUserLogin, login)
	}

	if err := s.sessions.SetSession(ctx, state.Session{ID: sessionID, Login: login, OpenedAt: time.Now()}); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	s.resetUserData()

	log.Infof("✅ Logged in as %s", login)
	return nil
}

// Logout ends the session. It reports false when no session was open.
func (s *Service) Logout(ctx context.Context) (bool, error) {
	session, ok := s.sessions.GetSession(ctx)
	if !ok {
		return false, nil
	}

	if _, err := s.caller.Call(ctx, "logoutUser", session.ID); err != nil {
		return false, err
	}

	if err := s.sessions.ClearSession(ctx); err != nil {
		return false, fmt.Errorf("failed to clear session: %w", err)
	}
	s.resetUserData()

	log.Infof("Logged out %s", session.Login)
	return true, nil
}

func (s *Service) LoggedIn(ctx context.Context) bool {
	_, ok := s.sessions.GetSession(ctx)
	return ok
}

func (s *Service) sessionID(ctx context.Context) (string, error) {
	session, ok := s.sessions.GetSession(ctx)
	if !ok {
		return "", domain.ErrLoginRequired
	}
	return session.ID, nil
}

func (s *Service) resetUserData() {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	s.userData = nil
	s.userStats = nil
}
