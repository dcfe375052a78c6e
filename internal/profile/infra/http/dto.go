package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/profile-client/internal/profile/app/api"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

type (
	ProfileOut struct {
		ID             domain.ProfileID    `json:"_id"`
		User           UserOut             `json:"user"`
		Company        string              `json:"company"`
		Website        string              `json:"website"`
		Location       string              `json:"location"`
		Status         string              `json:"status"`
		Skills         SkillsOut           `json:"skills"`
		Bio            string              `json:"bio"`
		GithubUsername string              `json:"githubusername"`
		Experience     []domain.Experience `json:"experience"`
		Education      []domain.Education  `json:"education"`
		Social         domain.Social       `json:"social"`
		Followers      []FollowerOut       `json:"followers"`
		Date           *time.Time          `json:"date"`
	}

	// UserOut is either a populated user object or a bare user id.
	UserOut domain.User

	// FollowerOut is either a bare user id or an object holding the user.
	FollowerOut domain.Follower

	// SkillsOut is either a list or a comma separated string.
	SkillsOut []string

	ErrorsOut struct {
		Errors []api.ValidationError `json:"errors"`
	}
)

func (u *UserOut) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*u = UserOut{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*u = UserOut{ID: domain.UserID(id)}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	*u = UserOut(user)
	return nil
}

func (f *FollowerOut) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var userID string
		if err := json.Unmarshal(data, &userID); err != nil {
			return err
		}
		*f = FollowerOut{User: domain.User{ID: domain.UserID(userID)}}
		return nil
	}

	var out struct {
		ID   string  `json:"_id"`
		User UserOut `json:"user"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode follower: %w", err)
	}
	*f = FollowerOut{ID: out.ID, User: domain.User(out.User)}
	return nil
}

func (s *SkillsOut) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		*s = splitSkills(joined)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("decode skills: %w", err)
	}
	*s = list
	return nil
}

func splitSkills(joined string) []string {
	result := make([]string, 0)
	for _, skill := range strings.Split(joined, ",") {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			result = append(result, skill)
		}
	}
	return result
}
