package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klwxsrx/profile-client/internal/pkg/cmd"
	"github.com/klwxsrx/profile-client/internal/profile"
	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/app/service"
	"github.com/klwxsrx/profile-client/internal/profile/app/store"
	"github.com/klwxsrx/profile-client/internal/profile/app/ui"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	infraui "github.com/klwxsrx/profile-client/internal/profile/infra/ui"
)

var errActionFailed = errors.New("profile request failed")

type (
	app struct {
		infra   *cmd.InfrastructureContainer
		profile *profile.DependencyContainer

		in     io.Reader
		out    io.Writer
		errOut io.Writer

		session   string
		assumeYes bool
	}

	// commandScope is what a single command works with: the session store and the actions bound to it.
	commandScope struct {
		store     *store.Store
		actions   service.ProfileActions
		navigator ui.Navigator
	}
)

func newApp(infra *cmd.InfrastructureContainer, in io.Reader, out, errOut io.Writer) *app {
	return &app{
		infra: infra,
		profile: profile.NewDependencyContainer(
			infra.DB,
			infra.DBMigrations,
			infra.HTTPClientFactory,
			infra.Observer,
			infra.Metrics,
			infra.Clock,
			infra.Logger,
		),
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// runActions opens the session, runs f against it, saves and prints the resulting state.
// It fails when any PROFILE_ERROR was folded while f was running.
func (a *app) runActions(ctx context.Context, f func(ctx context.Context, scope commandScope)) error {
	sessions, err := a.profile.SessionService.Load()
	if err != nil {
		return err
	}

	st, err := sessions.Open(ctx, a.session)
	if err != nil {
		return err
	}

	var failure *domain.ErrorInfo
	unsubscribe := st.Subscribe(func(_ context.Context, act action.Action, _ domain.ProfileState) {
		if profileErr, ok := act.(action.ProfileError); ok {
			info := profileErr.Info
			failure = &info
		}
	})
	defer unsubscribe()

	actions, err := a.profile.NewProfileActions(st, a.notifier(), a.confirmer())
	if err != nil {
		return err
	}

	f(ctx, commandScope{
		store:     st,
		actions:   actions,
		navigator: infraui.NewNavigator(a.errOut),
	})

	err = sessions.Save(ctx, a.session, st)
	if err != nil {
		return err
	}

	err = writeState(a.out, st.State())
	if err != nil {
		return err
	}

	if failure != nil {
		return fmt.Errorf("%w: %s", errActionFailed, describeError(*failure))
	}

	return nil
}

func (a *app) printState(ctx context.Context) error {
	sessions, err := a.profile.SessionService.Load()
	if err != nil {
		return err
	}

	st, err := sessions.Open(ctx, a.session)
	if err != nil {
		return err
	}

	return writeState(a.out, st.State())
}

func (a *app) reset(ctx context.Context) error {
	sessions, err := a.profile.SessionService.Load()
	if err != nil {
		return err
	}

	return sessions.Reset(ctx, a.session)
}

func (a *app) notifier() ui.Notifier {
	return infraui.NewMultiNotifier(
		infraui.NewTerminalNotifier(a.errOut),
		infraui.NewLoggerNotifier(a.infra.Logger.MustLoad()),
	)
}

func (a *app) confirmer() ui.Confirmer {
	if a.assumeYes {
		return infraui.NewStaticConfirmer(true)
	}

	return infraui.NewPromptConfirmer(a.in, a.errOut)
}

func describeError(info domain.ErrorInfo) string {
	if info.StatusCode == 0 {
		return info.Message
	}

	return fmt.Sprintf("%s (status %d)", info.Message, info.StatusCode)
}
