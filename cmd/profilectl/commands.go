package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/profile-client/internal/pkg/cmd"
	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/app/api"
	"github.com/klwxsrx/profile-client/internal/profile/app/snapshot"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	"github.com/klwxsrx/profile-client/pkg/env"
	"github.com/klwxsrx/profile-client/pkg/worker"
)

func newRootCommand(infra *cmd.InfrastructureContainer, in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := newApp(infra, in, out, errOut)

	var envFiles []string
	root := &cobra.Command{
		Use:   "profilectl",
		Short: "Browse and edit developer profiles",
		Long: `Browse and edit developer profiles of the social network API.

Every command prints the resulting profile state as JSON. The state is kept
per session between runs, see the state and reset commands.

Environment:
  PROFILE_API_URL     API base url (default http://localhost:5000/api)
  PROFILE_API_TOKEN   token sent as x-auth-token
  STATE_SQL_DRIVER    sqlite (default) or postgres
  STATE_SQL_DSN       state database (default $HOME/.profilectl/state.db)
  METRICS_TEXTFILE    write prometheus metrics to this file on exit
  LOG_LEVEL           disabled, debug, info, warn (default) or error
  LOG_FORMAT          json (default) or text`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return env.LoadDotEnv(envFiles...)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.session, "session", snapshot.DefaultSession, "name of the state session")
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load, missing files are skipped")

	root.AddCommand(
		newMeCommand(a),
		newListCommand(a),
		newGetCommand(a),
		newReposCommand(a),
		newShowCommand(a),
		newCreateCommand(a),
		newFollowCommand(a),
		newUnfollowCommand(a),
		newFollowersCommand(a),
		newExperienceCommand(a),
		newEducationCommand(a),
		newDeleteAccountCommand(a),
		newStateCommand(a),
		newResetCommand(a),
	)

	return root
}

func newMeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Load the profile of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.GetCurrentProfile(ctx)
			})
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.GetProfiles(ctx)
			})
		},
	}
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <userID>",
		Short: "Load the profile of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.GetProfileByID(ctx, domain.UserID(args[0]))
			})
		},
	}
}

func newReposCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repos <githubUsername>",
		Short: "Load the latest GitHub repositories of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.GetGithubRepos(ctx, args[0])
			})
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	var githubUsername string
	command := &cobra.Command{
		Use:   "show <userID>",
		Short: "Load a profile together with its GitHub repositories",
		Long: `Load a profile together with its GitHub repositories.

The previously shown profile is cleared first. With --github both requests
run concurrently, otherwise repositories are requested after the profile
was loaded, for its github username.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			userID := domain.UserID(args[0])
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				// the saved session may still hold another profile with its repos
				scope.store.Dispatch(ctx, action.ClearProfile{})

				if githubUsername == "" {
					scope.actions.GetProfileByID(ctx, userID)
					if profile := scope.store.State().Profile; profile != nil && profile.GithubUsername != "" {
						scope.actions.GetGithubRepos(ctx, profile.GithubUsername)
					}
					return
				}

				group := worker.NewFailSafeGroup(ctx)
				group.Do(func(ctx context.Context) error {
					scope.actions.GetProfileByID(ctx, userID)
					return nil
				})
				group.Do(func(ctx context.Context) error {
					scope.actions.GetGithubRepos(ctx, githubUsername)
					return nil
				})
				_ = group.Wait()
			})
		},
	}
	command.Flags().StringVar(&githubUsername, "github", "", "github username to load repositories for")

	return command
}

func newCreateCommand(a *app) *cobra.Command {
	var (
		file string
		edit bool
	)
	command := &cobra.Command{
		Use:   "create --file <form.json>",
		Short: "Create or update the profile of the authenticated user",
		Long: `Create or update the profile of the authenticated user.

The form is a JSON object with the fields status, skills (comma separated),
company, website, location, githubusername, bio, twitter, facebook, linkedin,
youtube and instagram. Use --file - to read it from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			form, err := readForm[api.ProfileForm](file, a.in)
			if err != nil {
				return err
			}

			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.CreateProfile(ctx, form, scope.navigator, edit)
			})
		},
	}
	command.Flags().StringVar(&file, "file", "", "path to the JSON form, - for stdin")
	command.Flags().BoolVar(&edit, "edit", false, "update an existing profile, stays on the current page")
	_ = command.MarkFlagRequired("file")

	return command
}

func newFollowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <profileID>",
		Short: "Follow a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.AddFollower(ctx, domain.ProfileID(args[0]))
			})
		},
	}
}

func newUnfollowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <profileID>",
		Short: "Stop following a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.RemoveFollower(ctx, domain.ProfileID(args[0]))
			})
		},
	}
}

func newFollowersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "followers <profileID>",
		Short: "Load the followers of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.GetFollowers(ctx, domain.ProfileID(args[0]))
			})
		},
	}
}

func newExperienceCommand(a *app) *cobra.Command {
	var file string
	add := &cobra.Command{
		Use:   "add --file <form.json>",
		Short: "Add an experience entry",
		Long: `Add an experience entry to the profile of the authenticated user.

The form is a JSON object with the fields title, company, location, from,
to, current and description.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			form, err := readForm[api.ExperienceForm](file, a.in)
			if err != nil {
				return err
			}

			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.AddExperience(ctx, form, scope.navigator)
			})
		},
	}
	add.Flags().StringVar(&file, "file", "", "path to the JSON form, - for stdin")
	_ = add.MarkFlagRequired("file")

	remove := &cobra.Command{
		Use:   "delete <experienceID>",
		Short: "Delete an experience entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.DeleteExperience(ctx, domain.ExperienceID(args[0]))
			})
		},
	}

	command := &cobra.Command{
		Use:   "experience",
		Short: "Manage experience entries",
	}
	command.AddCommand(add, remove)

	return command
}

func newEducationCommand(a *app) *cobra.Command {
	var file string
	add := &cobra.Command{
		Use:   "add --file <form.json>",
		Short: "Add an education entry",
		Long: `Add an education entry to the profile of the authenticated user.

The form is a JSON object with the fields school, degree, fieldofstudy,
from, to, current and description.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			form, err := readForm[api.EducationForm](file, a.in)
			if err != nil {
				return err
			}

			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.AddEducation(ctx, form, scope.navigator)
			})
		},
	}
	add.Flags().StringVar(&file, "file", "", "path to the JSON form, - for stdin")
	_ = add.MarkFlagRequired("file")

	remove := &cobra.Command{
		Use:   "delete <educationID>",
		Short: "Delete an education entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.DeleteEducation(ctx, domain.EducationID(args[0]))
			})
		},
	}

	command := &cobra.Command{
		Use:   "education",
		Short: "Manage education entries",
	}
	command.AddCommand(add, remove)

	return command
}

func newDeleteAccountCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "delete-account",
		Short: "Permanently delete the account and profile of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runActions(c.Context(), func(ctx context.Context, scope commandScope) {
				scope.actions.DeleteAccount(ctx)
			})
		},
	}
	command.Flags().BoolVarP(&a.assumeYes, "yes", "y", false, "do not ask for confirmation")

	return command
}

func newStateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the saved state of the session without any request",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.printState(c.Context())
		},
	}
}

func newResetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved state of the session",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.reset(c.Context())
		},
	}
}
