package store

import (
	"context"
	"slices"
	"sync"

	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/app/reducer"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	"github.com/klwxsrx/profile-client/pkg/log"
	"github.com/klwxsrx/profile-client/pkg/metric"
)

type (
	// Listener observes every folded action together with the state it produced.
	// It is called under the store lock and must not dispatch.
	Listener func(ctx context.Context, a action.Action, state domain.ProfileState)

	Option func(*Store)

	subscription struct {
		id       int
		listener Listener
	}

	// Store owns the profile state of a session and is the single consumer of dispatched actions.
	Store struct {
		mutex     sync.Mutex
		state     domain.ProfileState
		listeners []subscription
		nextID    int

		logger  log.Logger
		metrics metric.Metrics
	}
)

func WithLogger(logger log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(metrics metric.Metrics) Option {
	return func(s *Store) {
		s.metrics = metrics
	}
}

func New(initial domain.ProfileState, opts ...Option) *Store {
	s := &Store{
		state:     initial,
		listeners: nil,
		logger:    log.NewStub(),
		metrics:   metric.NewMetricsStub(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dispatch folds a into the state. Concurrent calls are applied one at a time in arrival order.
func (s *Store) Dispatch(ctx context.Context, a action.Action) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.state = reducer.Reduce(s.state, a)

	s.logger.With(log.Fields{
		"action":  string(a.Type()),
		"loading": s.state.Loading,
	}).Debug(ctx, "action folded")
	s.metrics.WithLabel("type", string(a.Type())).Increment("profile_actions_total")

	for _, sub := range s.listeners {
		sub.listener(ctx, a, s.state)
	}
}

func (s *Store) State() domain.ProfileState {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.state
}

// Subscribe registers l and returns a func that removes it. Listeners are called in subscription order.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, listener: l})

	return func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}
