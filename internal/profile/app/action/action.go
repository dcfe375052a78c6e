//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Dispatcher=Dispatcher"
package action

import (
	"context"

	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

const (
	TypeGetProfile      Type = "GET_PROFILE"
	TypeGetProfiles     Type = "GET_PROFILES"
	TypeGetRepos        Type = "GET_REPOS"
	TypeGetFollowers    Type = "GET_FOLLOWERS"
	TypeUpdateProfile   Type = "UPDATE_PROFILE"
	TypeUpdateFollowers Type = "UPDATE_FOLLOWERS"
	TypeClearProfile    Type = "CLEAR_PROFILE"
	TypeProfileError    Type = "PROFILE_ERROR"
	TypeAccountDeleted  Type = "ACCOUNT_DELETED"
)

type (
	Type string

	// Action describes an outcome of a profile request, folded into state by the reducer.
	Action interface {
		Type() Type
	}

	Dispatcher interface {
		Dispatch(ctx context.Context, action Action)
	}

	GetProfile struct {
		Profile domain.Profile
	}

	GetProfiles struct {
		Profiles []domain.Profile
	}

	GetRepos struct {
		Repos []domain.Repo
	}

	GetFollowers struct {
		Followers []domain.Follower
	}

	UpdateProfile struct {
		Profile domain.Profile
	}

	UpdateFollowers struct {
		ProfileID domain.ProfileID
		Followers []domain.Follower
	}

	ClearProfile struct{}

	ProfileError struct {
		Info domain.ErrorInfo
	}

	AccountDeleted struct{}
)

func (GetProfile) Type() Type { return TypeGetProfile }

func (GetProfiles) Type() Type { return TypeGetProfiles }

func (GetRepos) Type() Type { return TypeGetRepos }

func (GetFollowers) Type() Type { return TypeGetFollowers }

func (UpdateProfile) Type() Type { return TypeUpdateProfile }

func (UpdateFollowers) Type() Type { return TypeUpdateFollowers }

func (ClearProfile) Type() Type { return TypeClearProfile }

func (ProfileError) Type() Type { return TypeProfileError }

func (AccountDeleted) Type() Type { return TypeAccountDeleted }

// DispatcherFunc adapts a plain function to Dispatcher.
type DispatcherFunc func(ctx context.Context, action Action)

func (f DispatcherFunc) Dispatch(ctx context.Context, action Action) {
	f(ctx, action)
}
