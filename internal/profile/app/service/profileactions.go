package service

import (
	"context"
	"errors"

	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/app/api"
	"github.com/klwxsrx/profile-client/internal/profile/app/ui"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	"github.com/klwxsrx/profile-client/pkg/log"
	"github.com/klwxsrx/profile-client/pkg/observability"
)

const (
	MsgProfileCreated    = "Profile Created"
	MsgProfileUpdated    = "Profile Updated"
	MsgExperienceAdded   = "Experience Added"
	MsgExperienceRemoved = "Experience Removed"
	MsgEducationAdded    = "Education Added"
	MsgEducationRemoved  = "Education Removed"
	MsgAccountDeleted    = "Your account has been permanently deleted"

	QuestionDeleteAccount = "Are you sure? This cannot be undone!"
)

type (
	// ProfileActions turns user intents into profile API calls and dispatches their outcome.
	// Failures are never returned, they are dispatched as action.ProfileError.
	ProfileActions interface {
		GetCurrentProfile(ctx context.Context)
		GetProfiles(ctx context.Context)
		GetProfileByID(ctx context.Context, userID domain.UserID)
		GetGithubRepos(ctx context.Context, username string)
		CreateProfile(ctx context.Context, form api.ProfileForm, navigator ui.Navigator, edit bool)
		AddFollower(ctx context.Context, id domain.ProfileID)
		RemoveFollower(ctx context.Context, id domain.ProfileID)
		GetFollowers(ctx context.Context, id domain.ProfileID)
		AddExperience(ctx context.Context, form api.ExperienceForm, navigator ui.Navigator)
		DeleteExperience(ctx context.Context, id domain.ExperienceID)
		AddEducation(ctx context.Context, form api.EducationForm, navigator ui.Navigator)
		DeleteEducation(ctx context.Context, id domain.EducationID)
		DeleteAccount(ctx context.Context)
	}

	profileActions struct {
		profileAPI api.ProfileAPI
		dispatcher action.Dispatcher
		notifier   ui.Notifier
		confirmer  ui.Confirmer
		observer   observability.Observer
		logger     log.Logger
	}
)

func NewProfileActions(
	profileAPI api.ProfileAPI,
	dispatcher action.Dispatcher,
	notifier ui.Notifier,
	confirmer ui.Confirmer,
	observer observability.Observer,
	logger log.Logger,
) ProfileActions {
	return &profileActions{
		profileAPI: profileAPI,
		dispatcher: dispatcher,
		notifier:   notifier,
		confirmer:  confirmer,
		observer:   observer,
		logger:     logger,
	}
}

func (s *profileActions) GetCurrentProfile(ctx context.Context) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.GetCurrent(ctx)
	if err != nil {
		s.dispatcher.Dispatch(ctx, action.ClearProfile{})
		s.fail(ctx, "getCurrentProfile", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.GetProfile{Profile: profile})
}

func (s *profileActions) GetProfiles(ctx context.Context) {
	ctx = s.withRequestID(ctx)
	s.dispatcher.Dispatch(ctx, action.ClearProfile{})

	profiles, err := s.profileAPI.List(ctx)
	if err != nil {
		s.fail(ctx, "getProfiles", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.GetProfiles{Profiles: profiles})
}

func (s *profileActions) GetProfileByID(ctx context.Context, userID domain.UserID) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.GetByUserID(ctx, userID)
	if err != nil {
		s.fail(ctx, "getProfileByID", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.GetProfile{Profile: profile})
}

func (s *profileActions) GetGithubRepos(ctx context.Context, username string) {
	ctx = s.withRequestID(ctx)

	repos, err := s.profileAPI.GetGithubRepos(ctx, username)
	if err != nil {
		s.fail(ctx, "getGithubRepos", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.GetRepos{Repos: repos})
}

func (s *profileActions) CreateProfile(ctx context.Context, form api.ProfileForm, navigator ui.Navigator, edit bool) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.CreateOrUpdate(ctx, form)
	if err != nil {
		s.notifyValidationErrors(ctx, err)
		s.fail(ctx, "createProfile", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.GetProfile{Profile: profile})

	if edit {
		s.notifier.Notify(ctx, MsgProfileUpdated, ui.SeveritySuccess)
		return
	}

	s.notifier.Notify(ctx, MsgProfileCreated, ui.SeveritySuccess)
	navigator.Push(ctx, ui.RouteDashboard)
}

func (s *profileActions) AddFollower(ctx context.Context, id domain.ProfileID) {
	ctx = s.withRequestID(ctx)

	followers, err := s.profileAPI.Follow(ctx, id)
	if err != nil {
		s.fail(ctx, "addFollower", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.UpdateFollowers{ProfileID: id, Followers: followers})
}

func (s *profileActions) RemoveFollower(ctx context.Context, id domain.ProfileID) {
	ctx = s.withRequestID(ctx)

	followers, err := s.profileAPI.Unfollow(ctx, id)
	if err != nil {
		s.fail(ctx, "removeFollower", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.UpdateFollowers{ProfileID: id, Followers: followers})
}

func (s *profileActions) GetFollowers(ctx context.Context, id domain.ProfileID) {
	ctx = s.withRequestID(ctx)
	s.dispatcher.Dispatch(ctx, action.ClearProfile{})

	followers, err := s.profileAPI.GetFollowers(ctx, id)
	if err != nil {
		s.fail(ctx, "getFollowers", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.GetFollowers{Followers: followers})
}

func (s *profileActions) AddExperience(ctx context.Context, form api.ExperienceForm, navigator ui.Navigator) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.AddExperience(ctx, form)
	if err != nil {
		s.notifyValidationErrors(ctx, err)
		s.fail(ctx, "addExperience", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.UpdateProfile{Profile: profile})
	s.notifier.Notify(ctx, MsgExperienceAdded, ui.SeveritySuccess)
	navigator.Push(ctx, ui.RouteDashboard)
}

func (s *profileActions) DeleteExperience(ctx context.Context, id domain.ExperienceID) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.DeleteExperience(ctx, id)
	if err != nil {
		s.fail(ctx, "deleteExperience", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.UpdateProfile{Profile: profile})
	s.notifier.Notify(ctx, MsgExperienceRemoved, ui.SeveritySuccess)
}

func (s *profileActions) AddEducation(ctx context.Context, form api.EducationForm, navigator ui.Navigator) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.AddEducation(ctx, form)
	if err != nil {
		s.notifyValidationErrors(ctx, err)
		s.fail(ctx, "addEducation", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.UpdateProfile{Profile: profile})
	s.notifier.Notify(ctx, MsgEducationAdded, ui.SeveritySuccess)
	navigator.Push(ctx, ui.RouteDashboard)
}

func (s *profileActions) DeleteEducation(ctx context.Context, id domain.EducationID) {
	ctx = s.withRequestID(ctx)

	profile, err := s.profileAPI.DeleteEducation(ctx, id)
	if err != nil {
		s.fail(ctx, "deleteEducation", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.UpdateProfile{Profile: profile})
	s.notifier.Notify(ctx, MsgEducationRemoved, ui.SeveritySuccess)
}

func (s *profileActions) DeleteAccount(ctx context.Context) {
	if !s.confirmer.Confirm(ctx, QuestionDeleteAccount) {
		return
	}

	ctx = s.withRequestID(ctx)

	err := s.profileAPI.DeleteAccount(ctx)
	if err != nil {
		s.fail(ctx, "deleteAccount", err)
		return
	}

	s.dispatcher.Dispatch(ctx, action.ClearProfile{})
	s.dispatcher.Dispatch(ctx, action.AccountDeleted{})
	s.notifier.Notify(ctx, MsgAccountDeleted, ui.SeverityDefault)
}

func (s *profileActions) withRequestID(ctx context.Context) context.Context {
	ctx, _ = s.observer.EnsureRequestID(ctx)
	return ctx
}

func (s *profileActions) notifyValidationErrors(ctx context.Context, err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return
	}

	for _, validationErr := range apiErr.ValidationErrors {
		s.notifier.Notify(ctx, validationErr.Message, ui.SeverityDanger)
	}
}

func (s *profileActions) fail(ctx context.Context, actionName string, err error) {
	info := toErrorInfo(err)
	s.logger.
		With(log.Fields{
			"action": actionName,
			"status": info.StatusCode,
		}).
		WithError(err).
		Warn(ctx, "profile action failed")

	s.dispatcher.Dispatch(ctx, action.ProfileError{Info: info})
}

func toErrorInfo(err error) domain.ErrorInfo {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return domain.ErrorInfo{
			Message:    apiErr.StatusText,
			StatusCode: apiErr.StatusCode,
		}
	}

	return domain.ErrorInfo{Message: api.StatusTextNetworkError}
}
