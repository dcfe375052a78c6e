package reducer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/app/reducer"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

type unknownAction struct{}

func (unknownAction) Type() action.Type { return "SET_ALERT" }

func TestReduce_GetProfile_SetsProfileAndStopsLoading(t *testing.T) {
	initial := domain.InitialState()
	profile := domain.Profile{ID: "u1", User: domain.User{Name: "A"}}

	next := reducer.Reduce(initial, action.GetProfile{Profile: profile})

	require.NotNil(t, next.Profile)
	assert.Equal(t, profile, *next.Profile)
	assert.False(t, next.Loading)
	assert.Equal(t, initial.Profiles, next.Profiles)
	assert.Nil(t, next.Repos)
	assert.Equal(t, initial.Followers, next.Followers)
	assert.Equal(t, initial.Error, next.Error)
}

func TestReduce_Returns(t *testing.T) {
	profile := domain.Profile{ID: "u1", Status: "Developer"}
	loaded := domain.InitialState()
	loaded.Profile = &profile
	loaded.Repos = []domain.Repo{{ID: 1, Name: "repo"}}
	loaded.Followers = []domain.Follower{{User: domain.User{ID: "f1"}}}
	loaded.Loading = false

	tests := []struct {
		name   string
		state  domain.ProfileState
		action action.Action
		expect func(t *testing.T, state domain.ProfileState)
	}{
		{
			name:   "update_profile_replaces_profile",
			state:  loaded,
			action: action.UpdateProfile{Profile: domain.Profile{ID: "u1", Status: "Lead"}},
			expect: func(t *testing.T, state domain.ProfileState) {
				require.NotNil(t, state.Profile)
				assert.Equal(t, "Lead", state.Profile.Status)
				assert.False(t, state.Loading)
			},
		},
		{
			name:   "get_profiles_replaces_profiles",
			state:  domain.InitialState(),
			action: action.GetProfiles{Profiles: []domain.Profile{{ID: "a"}, {ID: "b"}}},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Equal(t, []domain.Profile{{ID: "a"}, {ID: "b"}}, state.Profiles)
				assert.Nil(t, state.Profile)
				assert.False(t, state.Loading)
			},
		},
		{
			name:   "get_followers_replaces_followers",
			state:  domain.InitialState(),
			action: action.GetFollowers{Followers: []domain.Follower{{User: domain.User{ID: "x"}}}},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Equal(t, []domain.Follower{{User: domain.User{ID: "x"}}}, state.Followers)
				assert.False(t, state.Loading)
			},
		},
		{
			name:   "get_repos_replaces_repos",
			state:  domain.InitialState(),
			action: action.GetRepos{Repos: []domain.Repo{{ID: 7, Name: "dotfiles"}}},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Equal(t, []domain.Repo{{ID: 7, Name: "dotfiles"}}, state.Repos)
				assert.False(t, state.Loading)
			},
		},
		{
			name:   "profile_error_sets_error",
			state:  domain.InitialState(),
			action: action.ProfileError{Info: domain.ErrorInfo{Message: "Not Found", StatusCode: 404}},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Equal(t, domain.ErrorInfo{Message: "Not Found", StatusCode: 404}, state.Error)
				assert.False(t, state.Loading)
			},
		},
		{
			name:   "clear_profile_resets_profile_repos_and_followers",
			state:  loaded,
			action: action.ClearProfile{},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Nil(t, state.Profile)
				assert.NotNil(t, state.Repos)
				assert.Empty(t, state.Repos)
				assert.NotNil(t, state.Followers)
				assert.Empty(t, state.Followers)
				assert.True(t, state.Loading)
			},
		},
		{
			name:   "account_deleted_keeps_state",
			state:  loaded,
			action: action.AccountDeleted{},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Equal(t, loaded, state)
			},
		},
		{
			name:   "unknown_action_keeps_state",
			state:  loaded,
			action: unknownAction{},
			expect: func(t *testing.T, state domain.ProfileState) {
				assert.Equal(t, loaded, state)
			},
		},
	}

	for _, test := range tests {
		tc := test
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.expect(t, reducer.Reduce(tc.state, tc.action))
		})
	}
}

func TestReduce_UpdateFollowers_ReplacesOnlyMatchingProfile(t *testing.T) {
	state := domain.InitialState()
	state.Profiles = []domain.Profile{
		{ID: "a", Followers: []domain.Follower{}},
		{ID: "b", Followers: []domain.Follower{}},
	}
	before, err := json.Marshal(state.Profiles)
	require.NoError(t, err)

	next := reducer.Reduce(state, action.UpdateFollowers{
		ProfileID: "a",
		Followers: []domain.Follower{{User: domain.User{ID: "x"}}},
	})

	assert.Equal(t, []domain.Profile{
		{ID: "a", Followers: []domain.Follower{{User: domain.User{ID: "x"}}}},
		{ID: "b", Followers: []domain.Follower{}},
	}, next.Profiles)
	assert.False(t, next.Loading)

	after, err := json.Marshal(state.Profiles)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after), "previous state must stay untouched")
}

func TestReduce_UpdateFollowers_UnknownProfileKeepsProfiles(t *testing.T) {
	state := domain.InitialState()
	state.Profiles = []domain.Profile{{ID: "a"}}

	next := reducer.Reduce(state, action.UpdateFollowers{ProfileID: "z", Followers: []domain.Follower{{}}})

	assert.Equal(t, state.Profiles, next.Profiles)
	assert.False(t, next.Loading)
}

func TestReduce_IsDeterministic(t *testing.T) {
	actions := []action.Action{
		action.ClearProfile{},
		action.GetProfiles{Profiles: []domain.Profile{{ID: "a"}, {ID: "b"}}},
		action.UpdateFollowers{ProfileID: "b", Followers: []domain.Follower{{User: domain.User{ID: "y"}}}},
		action.GetProfile{Profile: domain.Profile{ID: "a"}},
		action.ProfileError{Info: domain.ErrorInfo{Message: "Bad Request", StatusCode: 400}},
		action.GetRepos{Repos: []domain.Repo{}},
	}

	fold := func() domain.ProfileState {
		state := domain.InitialState()
		for _, a := range actions {
			state = reducer.Reduce(state, a)
		}
		return state
	}

	assert.Equal(t, fold(), fold())
}

func TestInitialState_EncodesAsEmptySession(t *testing.T) {
	data, err := json.Marshal(domain.InitialState())
	require.NoError(t, err)

	assert.JSONEq(t, `{"profile":null,"profiles":[],"repos":null,"loading":true,"followers":[],"error":{}}`, string(data))
}

func TestReduce_ProfileError_EncodesMessageAndStatus(t *testing.T) {
	next := reducer.Reduce(domain.InitialState(), action.ProfileError{
		Info: domain.ErrorInfo{Message: "Not Found", StatusCode: 404},
	})

	data, err := json.Marshal(next.Error)
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"Not Found","status":404}`, string(data))
}
