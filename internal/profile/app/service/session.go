package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/profile-client/internal/profile/app/snapshot"
	"github.com/klwxsrx/profile-client/internal/profile/app/store"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	"github.com/klwxsrx/profile-client/pkg/log"
)

type (
	// SessionService resumes profile state between program runs.
	SessionService interface {
		Open(ctx context.Context, session string) (*store.Store, error)
		Save(ctx context.Context, session string, s *store.Store) error
		Reset(ctx context.Context, session string) error
	}

	sessionService struct {
		repo      snapshot.Repository
		storeOpts []store.Option
		logger    log.Logger
	}
)

func NewSessionService(repo snapshot.Repository, logger log.Logger, storeOpts ...store.Option) SessionService {
	return &sessionService{
		repo:      repo,
		storeOpts: storeOpts,
		logger:    logger,
	}
}

// Open returns a store holding the saved state of session, or the initial state for a new session.
func (s *sessionService) Open(ctx context.Context, session string) (*store.Store, error) {
	saved, err := s.repo.Load(ctx, session)
	if errors.Is(err, snapshot.ErrSnapshotNotFound) {
		s.logger.WithField("session", session).Debug(ctx, "starting new session")
		return store.New(domain.InitialState(), s.storeOpts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", session, err)
	}

	return store.New(saved.State, s.storeOpts...), nil
}

func (s *sessionService) Save(ctx context.Context, session string, st *store.Store) error {
	err := s.repo.Save(ctx, snapshot.Snapshot{
		Session: session,
		State:   st.State(),
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", session, err)
	}

	return nil
}

// Reset forgets the saved state, resetting an unknown session is not an error.
func (s *sessionService) Reset(ctx context.Context, session string) error {
	err := s.repo.Delete(ctx, session)
	if err != nil && !errors.Is(err, snapshot.ErrSnapshotNotFound) {
		return fmt.Errorf("reset session %s: %w", session, err)
	}

	return nil
}
