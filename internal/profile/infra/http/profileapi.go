package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/profile-client/internal/profile/app/api"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	pkghttp "github.com/klwxsrx/profile-client/pkg/http"
)

const AuthTokenHeader = "x-auth-token"

var (
	getCurrentProfileRoute = pkghttp.Route{Method: http.MethodGet, URL: "/profile/me"}
	listProfilesRoute      = pkghttp.Route{Method: http.MethodGet, URL: "/profile"}
	getProfileByUserRoute  = pkghttp.Route{Method: http.MethodGet, URL: "/profile/user/{userID}"}
	getGithubReposRoute    = pkghttp.Route{Method: http.MethodGet, URL: "/profile/github/{username}"}
	createProfileRoute     = pkghttp.Route{Method: http.MethodPost, URL: "/profile"}
	addExperienceRoute     = pkghttp.Route{Method: http.MethodPut, URL: "/profile/experience"}
	deleteExperienceRoute  = pkghttp.Route{Method: http.MethodDelete, URL: "/profile/experience/{id}"}
	addEducationRoute      = pkghttp.Route{Method: http.MethodPut, URL: "/profile/education"}
	deleteEducationRoute   = pkghttp.Route{Method: http.MethodDelete, URL: "/profile/education/{id}"}
	followRoute            = pkghttp.Route{Method: http.MethodPut, URL: "/profile/follow/{id}"}
	unfollowRoute          = pkghttp.Route{Method: http.MethodPut, URL: "/profile/unfollow/{id}"}
	getFollowersRoute      = pkghttp.Route{Method: http.MethodGet, URL: "/profile/followers/{id}"}
	deleteAccountRoute     = pkghttp.Route{Method: http.MethodDelete, URL: "/profile"}
)

type profileAPI struct {
	client pkghttp.Client
}

// WithAuthToken authenticates every request as the user owning token.
func WithAuthToken(token string) pkghttp.ClientOption {
	return pkghttp.WithRequestHeader(AuthTokenHeader, token)
}

func NewProfileAPI(client pkghttp.Client) api.ProfileAPI {
	return profileAPI{client: client}
}

func (a profileAPI) GetCurrent(ctx context.Context) (domain.Profile, error) {
	resp, err := a.send(ctx, getCurrentProfileRoute, nil)
	return parseProfile(resp, err)
}

func (a profileAPI) List(ctx context.Context) ([]domain.Profile, error) {
	resp, err := a.send(ctx, listProfilesRoute, nil)
	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]ProfileOut](), err)
	if err != nil {
		return nil, asAPIError(err)
	}

	profiles, err := toDomainProfiles(out)
	if err != nil {
		return nil, api.NewInvalidResponseError(err)
	}

	return profiles, nil
}

func (a profileAPI) GetByUserID(ctx context.Context, userID domain.UserID) (domain.Profile, error) {
	resp, err := a.send(ctx, getProfileByUserRoute, func(req *resty.Request) {
		req.SetPathParam("userID", userID.String())
	})
	return parseProfile(resp, err)
}

func (a profileAPI) GetGithubRepos(ctx context.Context, username string) ([]domain.Repo, error) {
	resp, err := a.send(ctx, getGithubReposRoute, func(req *resty.Request) {
		req.SetPathParam("username", username)
	})
	repos, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]domain.Repo](), err)
	if err != nil {
		return nil, asAPIError(err)
	}

	return nonNil(repos), nil
}

func (a profileAPI) CreateOrUpdate(ctx context.Context, form api.ProfileForm) (domain.Profile, error) {
	resp, err := a.send(ctx, createProfileRoute, jsonBody(form))
	return parseProfile(resp, err)
}

func (a profileAPI) AddExperience(ctx context.Context, form api.ExperienceForm) (domain.Profile, error) {
	resp, err := a.send(ctx, addExperienceRoute, jsonBody(form))
	return parseProfile(resp, err)
}

func (a profileAPI) DeleteExperience(ctx context.Context, id domain.ExperienceID) (domain.Profile, error) {
	resp, err := a.send(ctx, deleteExperienceRoute, pathID(string(id)))
	return parseProfile(resp, err)
}

func (a profileAPI) AddEducation(ctx context.Context, form api.EducationForm) (domain.Profile, error) {
	resp, err := a.send(ctx, addEducationRoute, jsonBody(form))
	return parseProfile(resp, err)
}

func (a profileAPI) DeleteEducation(ctx context.Context, id domain.EducationID) (domain.Profile, error) {
	resp, err := a.send(ctx, deleteEducationRoute, pathID(string(id)))
	return parseProfile(resp, err)
}

func (a profileAPI) Follow(ctx context.Context, id domain.ProfileID) ([]domain.Follower, error) {
	resp, err := a.send(ctx, followRoute, pathID(id.String()))
	return parseFollowers(resp, err)
}

func (a profileAPI) Unfollow(ctx context.Context, id domain.ProfileID) ([]domain.Follower, error) {
	resp, err := a.send(ctx, unfollowRoute, pathID(id.String()))
	return parseFollowers(resp, err)
}

func (a profileAPI) GetFollowers(ctx context.Context, id domain.ProfileID) ([]domain.Follower, error) {
	resp, err := a.send(ctx, getFollowersRoute, pathID(id.String()))
	return parseFollowers(resp, err)
}

func (a profileAPI) DeleteAccount(ctx context.Context) error {
	_, err := a.send(ctx, deleteAccountRoute, nil)
	return err
}

// send performs the request and maps transport failures and non 2xx responses to *api.Error.
func (a profileAPI) send(ctx context.Context, route pkghttp.Route, prepare func(*resty.Request)) (*resty.Response, error) {
	req := a.client.NewRequest(ctx, route)
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Send()
	if err != nil {
		return nil, api.NewNetworkError(fmt.Errorf("request %s %s: %w", route.Method, route.URL, err))
	}
	if !resp.IsSuccess() {
		return nil, toStatusError(resp)
	}

	return resp, nil
}

func toStatusError(resp *resty.Response) *api.Error {
	var validationErrors []api.ValidationError
	if body := pkghttp.ParseResponseOptional(resp, pkghttp.JSONBody[ErrorsOut](), nil); body != nil {
		validationErrors = body.Errors
	}

	return api.NewStatusError(resp.StatusCode(), pkghttp.StatusText(resp), validationErrors)
}

func parseProfile(resp *resty.Response, lastErr error) (domain.Profile, error) {
	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[ProfileOut](), lastErr)
	if err != nil {
		return domain.Profile{}, asAPIError(err)
	}

	profile, err := toDomainProfile(out)
	if err != nil {
		return domain.Profile{}, api.NewInvalidResponseError(err)
	}

	return profile, nil
}

func parseFollowers(resp *resty.Response, lastErr error) ([]domain.Follower, error) {
	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]FollowerOut](), lastErr)
	if err != nil {
		return nil, asAPIError(err)
	}

	return toDomainFollowers(out), nil
}

func asAPIError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return err
	}

	return api.NewInvalidResponseError(err)
}

func jsonBody(body any) func(*resty.Request) {
	return func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
}

func pathID(id string) func(*resty.Request) {
	return func(req *resty.Request) {
		req.SetPathParam("id", id)
	}
}
