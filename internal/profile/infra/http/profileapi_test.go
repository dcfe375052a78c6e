package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/profile-client/internal/profile/app/api"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	profilehttp "github.com/klwxsrx/profile-client/internal/profile/infra/http"
	pkghttp "github.com/klwxsrx/profile-client/pkg/http"
	"github.com/klwxsrx/profile-client/pkg/observability"
)

const testToken = "secret-token"

type fakeServer struct {
	mutex    sync.Mutex
	router   *mux.Router
	requests []*http.Request
	bodies   []string
}

func newFakeServer(t *testing.T) (*fakeServer, api.ProfileAPI) {
	fake := &fakeServer{router: mux.NewRouter()}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fake.mutex.Lock()
		fake.requests = append(fake.requests, r)
		fake.bodies = append(fake.bodies, string(body))
		fake.mutex.Unlock()
		fake.router.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("profile", server.URL+"/api"),
		pkghttp.WithRequestObservability(observability.New(), pkghttp.DefaultRequestIDHeader),
		profilehttp.WithAuthToken(testToken),
	)

	return fake, profilehttp.NewProfileAPI(client)
}

func (s *fakeServer) handle(method, path string, status int, body string) {
	s.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

func (s *fakeServer) lastRequest(t *testing.T) *http.Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *fakeServer) lastBody() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.bodies) == 0 {
		return ""
	}
	return s.bodies[len(s.bodies)-1]
}

func requireAPIError(t *testing.T, err error) *api.Error {
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr), "expected *api.Error, got %v", err)
	return apiErr
}

func TestProfileAPI_GetCurrent_SendsAuthAndRequestID(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodGet, "/api/profile/me", http.StatusOK, `{
		"_id": "p1",
		"user": {"_id": "u1", "name": "A", "avatar": "//avatar"},
		"status": "Developer",
		"skills": ["go", "sql"],
		"experience": [{"_id": "e1", "title": "Engineer", "company": "Acme", "from": "2020-01-01T00:00:00.000Z", "current": true}],
		"education": [],
		"followers": [{"_id": "f1", "user": "u2"}],
		"date": "2024-03-01T10:00:00.000Z"
	}`)

	ctx := observability.New().WithRequestID(context.Background(), "req-1")
	profile, err := profileAPI.GetCurrent(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.ProfileID("p1"), profile.ID)
	assert.Equal(t, domain.User{ID: "u1", Name: "A", Avatar: "//avatar"}, profile.User)
	assert.Equal(t, []string{"go", "sql"}, profile.Skills)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, domain.ExperienceID("e1"), profile.Experience[0].ID)
	assert.Equal(t, []domain.Education{}, profile.Education)
	assert.Equal(t, []domain.Follower{{ID: "f1", User: domain.User{ID: "u2"}}}, profile.Followers)
	require.NotNil(t, profile.Date)

	req := fake.lastRequest(t)
	assert.Equal(t, testToken, req.Header.Get(profilehttp.AuthTokenHeader))
	assert.Equal(t, "req-1", req.Header.Get(pkghttp.DefaultRequestIDHeader))
}

func TestProfileAPI_GetByUserID_UserAsID(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodGet, "/api/profile/user/{userID}", http.StatusOK, `{"_id": "p1", "user": "u1", "skills": "go, sql ,"}`)

	profile, err := profileAPI.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("u1"), profile.User.ID)
	assert.Equal(t, []string{"go", "sql"}, profile.Skills)
	assert.Equal(t, "/api/profile/user/u1", fake.lastRequest(t).URL.Path)
}

func TestProfileAPI_List_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectIDs []domain.ProfileID
		expectErr bool
	}{
		{
			name:      "distinct_ids",
			body:      `[{"_id": "a", "user": "u1"}, {"_id": "b", "user": "u2"}]`,
			expectIDs: []domain.ProfileID{"a", "b"},
		},
		{
			name:      "empty_list",
			body:      `[]`,
			expectIDs: []domain.ProfileID{},
		},
		{
			name:      "duplicate_ids",
			body:      `[{"_id": "a"}, {"_id": "a"}]`,
			expectErr: true,
		},
		{
			name:      "missing_id",
			body:      `[{"user": "u1"}]`,
			expectErr: true,
		},
		{
			name:      "malformed_json",
			body:      `{"not": "a list"`,
			expectErr: true,
		},
	}

	for _, test := range tests {
		tc := test
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fake, profileAPI := newFakeServer(t)
			fake.handle(http.MethodGet, "/api/profile", http.StatusOK, tc.body)

			profiles, err := profileAPI.List(context.Background())
			if tc.expectErr {
				apiErr := requireAPIError(t, err)
				assert.Equal(t, 0, apiErr.StatusCode)
				assert.Equal(t, api.StatusTextInvalidResponse, apiErr.StatusText)
				return
			}

			require.NoError(t, err)
			ids := make([]domain.ProfileID, 0, len(profiles))
			for _, profile := range profiles {
				ids = append(ids, profile.ID)
			}
			assert.Equal(t, tc.expectIDs, ids)
		})
	}
}

func TestProfileAPI_StatusErrors(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodGet, "/api/profile/me", http.StatusBadRequest, `{"msg": "There is no profile for this user"}`)
	fake.handle(http.MethodGet, "/api/profile/github/{username}", http.StatusNotFound, `{"msg": "No Github profile found"}`)

	_, err := profileAPI.GetCurrent(context.Background())
	apiErr := requireAPIError(t, err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Bad Request", apiErr.StatusText)
	assert.Empty(t, apiErr.ValidationErrors)

	_, err = profileAPI.GetGithubRepos(context.Background(), "ghost")
	apiErr = requireAPIError(t, err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.StatusText)
}

func TestProfileAPI_CreateOrUpdate_ValidationErrors(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodPost, "/api/profile", http.StatusBadRequest, `{"errors": [
		{"msg": "Status is required", "param": "status", "location": "body"},
		{"msg": "Skills is required", "param": "skills", "location": "body"}
	]}`)

	_, err := profileAPI.CreateOrUpdate(context.Background(), api.ProfileForm{Company: "Acme"})
	apiErr := requireAPIError(t, err)
	assert.Equal(t, []api.ValidationError{
		{Message: "Status is required", Param: "status", Location: "body"},
		{Message: "Skills is required", Param: "skills", Location: "body"},
	}, apiErr.ValidationErrors)

	req := fake.lastRequest(t)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.lastBody()), &sent))
	assert.Equal(t, "Acme", sent["company"])
	assert.Equal(t, "", sent["status"])
}

func TestProfileAPI_ExperienceAndEducation(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	profileBody := `{"_id": "p1", "user": "u1", "experience": [], "education": []}`
	fake.handle(http.MethodPut, "/api/profile/experience", http.StatusOK, profileBody)
	fake.handle(http.MethodDelete, "/api/profile/experience/{id}", http.StatusOK, profileBody)
	fake.handle(http.MethodPut, "/api/profile/education", http.StatusOK, profileBody)
	fake.handle(http.MethodDelete, "/api/profile/education/{id}", http.StatusOK, profileBody)

	ctx := context.Background()

	_, err := profileAPI.AddExperience(ctx, api.ExperienceForm{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, fake.lastRequest(t).Method)

	_, err = profileAPI.DeleteExperience(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "/api/profile/experience/e1", fake.lastRequest(t).URL.Path)

	_, err = profileAPI.AddEducation(ctx, api.EducationForm{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2010-09-01"})
	require.NoError(t, err)

	_, err = profileAPI.DeleteEducation(ctx, "ed1")
	require.NoError(t, err)
	assert.Equal(t, "/api/profile/education/ed1", fake.lastRequest(t).URL.Path)
}

func TestProfileAPI_ExperienceWithoutID_InvalidResponse(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodPut, "/api/profile/experience", http.StatusOK, `{"_id": "p1", "experience": [{"title": "Engineer"}]}`)

	_, err := profileAPI.AddExperience(context.Background(), api.ExperienceForm{})
	apiErr := requireAPIError(t, err)
	assert.Equal(t, api.StatusTextInvalidResponse, apiErr.StatusText)
}

func TestProfileAPI_Followers(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodPut, "/api/profile/follow/{id}", http.StatusOK, `["u1", {"_id": "f2", "user": {"_id": "u2", "name": "B"}}]`)
	fake.handle(http.MethodPut, "/api/profile/unfollow/{id}", http.StatusOK, `[]`)
	fake.handle(http.MethodGet, "/api/profile/followers/{id}", http.StatusOK, `[{"user": "u3"}]`)

	ctx := context.Background()

	followers, err := profileAPI.Follow(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{
		{User: domain.User{ID: "u1"}},
		{ID: "f2", User: domain.User{ID: "u2", Name: "B"}},
	}, followers)
	assert.Equal(t, "/api/profile/follow/p1", fake.lastRequest(t).URL.Path)

	followers, err = profileAPI.Unfollow(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{}, followers)

	followers, err = profileAPI.GetFollowers(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{{User: domain.User{ID: "u3"}}}, followers)
}

func TestProfileAPI_GetGithubRepos(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodGet, "/api/profile/github/{username}", http.StatusOK, `[
		{"id": 1, "name": "dotfiles", "html_url": "https://github.com/octocat/dotfiles", "stargazers_count": 3, "forks_count": 1}
	]`)

	repos, err := profileAPI.GetGithubRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, []domain.Repo{{
		ID:              1,
		Name:            "dotfiles",
		HTMLURL:         "https://github.com/octocat/dotfiles",
		StargazersCount: 3,
		ForksCount:      1,
	}}, repos)
}

func TestProfileAPI_DeleteAccount(t *testing.T) {
	fake, profileAPI := newFakeServer(t)
	fake.handle(http.MethodDelete, "/api/profile", http.StatusOK, `{"msg": "User deleted"}`)

	require.NoError(t, profileAPI.DeleteAccount(context.Background()))
	assert.Equal(t, http.MethodDelete, fake.lastRequest(t).Method)
}

func TestProfileAPI_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	profileAPI := profilehttp.NewProfileAPI(pkghttp.NewClient(pkghttp.WithClientDestination("profile", baseURL)))

	_, err := profileAPI.GetCurrent(context.Background())
	apiErr := requireAPIError(t, err)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Equal(t, api.StatusTextNetworkError, apiErr.StatusText)
	assert.Error(t, apiErr.Unwrap())
}
