package reducer

import (
	"slices"

	"github.com/klwxsrx/profile-client/internal/profile/app/action"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

// Reduce folds a into state and returns the next state. It never mutates the slices of the given state,
// actions it does not know return the state as is.
func Reduce(state domain.ProfileState, a action.Action) domain.ProfileState {
	switch a := a.(type) {
	case action.GetProfile:
		state.Profile = profileRef(a.Profile)
		state.Loading = false
	case action.UpdateProfile:
		state.Profile = profileRef(a.Profile)
		state.Loading = false
	case action.GetProfiles:
		state.Profiles = a.Profiles
		state.Loading = false
	case action.GetFollowers:
		state.Followers = a.Followers
		state.Loading = false
	case action.GetRepos:
		state.Repos = a.Repos
		state.Loading = false
	case action.UpdateFollowers:
		state.Profiles = replaceFollowers(state.Profiles, a.ProfileID, a.Followers)
		state.Loading = false
	case action.ProfileError:
		state.Error = a.Info
		state.Loading = false
	case action.ClearProfile:
		state.Profile = nil
		state.Repos = []domain.Repo{}
		state.Followers = []domain.Follower{}
		state.Loading = true
	}

	return state
}

func profileRef(profile domain.Profile) *domain.Profile {
	return &profile
}

func replaceFollowers(
	profiles []domain.Profile,
	id domain.ProfileID,
	followers []domain.Follower,
) []domain.Profile {
	if profiles == nil {
		return nil
	}

	result := slices.Clone(profiles)
	for i := range result {
		if result[i].ID == id {
			result[i].Followers = followers
		}
	}

	return result
}
