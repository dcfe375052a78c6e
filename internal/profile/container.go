package profile

import (
	sqlprofile "github.com/klwxsrx/profile-client/data/sql/profile"
	"github.com/klwxsrx/profile-client/internal/pkg/cmd"
	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/app/api"
	"github.com/klwxsrx/profile-client/internal/profile/app/service"
	"github.com/klwxsrx/profile-client/internal/profile/app/snapshot"
	"github.com/klwxsrx/profile-client/internal/profile/app/store"
	"github.com/klwxsrx/profile-client/internal/profile/app/ui"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	"github.com/klwxsrx/profile-client/internal/profile/infra/http"
	"github.com/klwxsrx/profile-client/internal/profile/infra/sql"
	"github.com/klwxsrx/profile-client/pkg/env"
	pkghttp "github.com/klwxsrx/profile-client/pkg/http"
	"github.com/klwxsrx/profile-client/pkg/lazy"
	"github.com/klwxsrx/profile-client/pkg/log"
	"github.com/klwxsrx/profile-client/pkg/metric"
	"github.com/klwxsrx/profile-client/pkg/observability"
	pkgsql "github.com/klwxsrx/profile-client/pkg/sql"
	pkgtime "github.com/klwxsrx/profile-client/pkg/time"
)

const (
	DefaultAPIURL = "http://localhost:5000/api"

	apiTokenEnv = "PROFILE_API_TOKEN"
)

type DependencyContainer struct {
	ProfileAPI     lazy.Loader[api.ProfileAPI]
	SessionService lazy.Loader[service.SessionService]

	observer lazy.Loader[observability.Observer]
	logger   lazy.Loader[log.Logger]
}

func NewDependencyContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[*metric.PrometheusMetrics],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) *DependencyContainer {
	snapshotRepo := snapshotRepoProvider(db, dbMigrations, clock)

	return &DependencyContainer{
		ProfileAPI:     profileAPIProvider(httpClientFactory),
		SessionService: sessionServiceProvider(snapshotRepo, metrics, logger),
		observer:       observer,
		logger:         logger,
	}
}

// NewProfileActions binds the action layer to the store of the current session and to the user facing collaborators.
func (c *DependencyContainer) NewProfileActions(
	dispatcher action.Dispatcher,
	notifier ui.Notifier,
	confirmer ui.Confirmer,
) (service.ProfileActions, error) {
	profileAPI, err := c.ProfileAPI.Load()
	if err != nil {
		return nil, err
	}

	return service.NewProfileActions(
		profileAPI,
		dispatcher,
		notifier,
		confirmer,
		c.observer.MustLoad(),
		c.logger.MustLoad().WithField("domain", domain.Name),
	), nil
}

func profileAPIProvider(httpClientFactory lazy.Loader[cmd.HTTPClientFactory]) lazy.Loader[api.ProfileAPI] {
	return lazy.New(func() (api.ProfileAPI, error) {
		opts := make([]pkghttp.ClientOption, 0, 1)
		token := env.Must(env.ParseDefault[string](apiTokenEnv, ""))
		if token != "" {
			opts = append(opts, http.WithAuthToken(token))
		}

		client := httpClientFactory.MustLoad().InitClient(domain.Name, DefaultAPIURL, opts...)
		return http.NewProfileAPI(client), nil
	})
}

func snapshotRepoProvider(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[snapshot.Repository] {
	return lazy.New(func() (snapshot.Repository, error) {
		migrations, err := dbMigrations.Load()
		if err != nil {
			return nil, err
		}
		err = migrations.Register(sqlprofile.Migrations)
		if err != nil {
			return nil, err
		}

		database := db.MustLoad()
		return sql.NewSnapshotRepository(database, database.Builder(), clock.MustLoad()), nil
	})
}

func sessionServiceProvider(
	snapshotRepo lazy.Loader[snapshot.Repository],
	metrics lazy.Loader[*metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.SessionService] {
	return lazy.New(func() (service.SessionService, error) {
		repo, err := snapshotRepo.Load()
		if err != nil {
			return nil, err
		}

		return service.NewSessionService(
			repo,
			logger.MustLoad(),
			store.WithLogger(logger.MustLoad()),
			store.WithMetrics(metrics.MustLoad()),
		), nil
	})
}
