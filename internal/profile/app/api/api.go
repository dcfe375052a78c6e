//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileAPI=ProfileAPI"
package api

import (
	"context"

	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

type ProfileAPI interface {
	GetCurrent(ctx context.Context) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	GetByUserID(ctx context.Context, userID domain.UserID) (domain.Profile, error)
	GetGithubRepos(ctx context.Context, username string) ([]domain.Repo, error)
	CreateOrUpdate(ctx context.Context, form ProfileForm) (domain.Profile, error)
	AddExperience(ctx context.Context, form ExperienceForm) (domain.Profile, error)
	DeleteExperience(ctx context.Context, id domain.ExperienceID) (domain.Profile, error)
	AddEducation(ctx context.Context, form EducationForm) (domain.Profile, error)
	DeleteEducation(ctx context.Context, id domain.EducationID) (domain.Profile, error)
	Follow(ctx context.Context, id domain.ProfileID) ([]domain.Follower, error)
	Unfollow(ctx context.Context, id domain.ProfileID) ([]domain.Follower, error)
	GetFollowers(ctx context.Context, id domain.ProfileID) ([]domain.Follower, error)
	DeleteAccount(ctx context.Context) error
}

type (
	ProfileForm struct {
		Company        string `json:"company,omitempty"`
		Website        string `json:"website,omitempty"`
		Location       string `json:"location,omitempty"`
		Status         string `json:"status"`
		Skills         string `json:"skills"`
		GithubUsername string `json:"githubusername,omitempty"`
		Bio            string `json:"bio,omitempty"`
		Twitter        string `json:"twitter,omitempty"`
		Facebook       string `json:"facebook,omitempty"`
		LinkedIn       string `json:"linkedin,omitempty"`
		YouTube        string `json:"youtube,omitempty"`
		Instagram      string `json:"instagram,omitempty"`
	}

	ExperienceForm struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Location    string `json:"location,omitempty"`
		From        string `json:"from"`
		To          string `json:"to,omitempty"`
		Current     bool   `json:"current"`
		Description string `json:"description,omitempty"`
	}

	EducationForm struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		From         string `json:"from"`
		To           string `json:"to,omitempty"`
		Current      bool   `json:"current"`
		Description  string `json:"description,omitempty"`
	}
)
