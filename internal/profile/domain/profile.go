package domain

import "time"

const Name = "profile"

type (
	ProfileID    string
	UserID       string
	ExperienceID string
	EducationID  string

	Profile struct {
		ID             ProfileID    `json:"_id"`
		User           User         `json:"user"`
		Company        string       `json:"company,omitempty"`
		Website        string       `json:"website,omitempty"`
		Location       string       `json:"location,omitempty"`
		Status         string       `json:"status,omitempty"`
		Skills         []string     `json:"skills"`
		Bio            string       `json:"bio,omitempty"`
		GithubUsername string       `json:"githubusername,omitempty"`
		Experience     []Experience `json:"experience"`
		Education      []Education  `json:"education"`
		Social         Social       `json:"social"`
		Followers      []Follower   `json:"followers"`
		Date           *time.Time   `json:"date,omitempty"`
	}

	User struct {
		ID     UserID `json:"_id"`
		Name   string `json:"name,omitempty"`
		Avatar string `json:"avatar,omitempty"`
	}

	Experience struct {
		ID          ExperienceID `json:"_id"`
		Title       string       `json:"title"`
		Company     string       `json:"company"`
		Location    string       `json:"location,omitempty"`
		From        *time.Time   `json:"from,omitempty"`
		To          *time.Time   `json:"to,omitempty"`
		Current     bool         `json:"current"`
		Description string       `json:"description,omitempty"`
	}

	Education struct {
		ID           EducationID `json:"_id"`
		School       string      `json:"school"`
		Degree       string      `json:"degree"`
		FieldOfStudy string      `json:"fieldofstudy"`
		From         *time.Time  `json:"from,omitempty"`
		To           *time.Time  `json:"to,omitempty"`
		Current      bool        `json:"current"`
		Description  string      `json:"description,omitempty"`
	}

	Social struct {
		YouTube   string `json:"youtube,omitempty"`
		Twitter   string `json:"twitter,omitempty"`
		Facebook  string `json:"facebook,omitempty"`
		LinkedIn  string `json:"linkedin,omitempty"`
		Instagram string `json:"instagram,omitempty"`
	}

	Follower struct {
		ID   string `json:"_id,omitempty"`
		User User   `json:"user"`
	}

	Repo struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		FullName        string `json:"full_name,omitempty"`
		HTMLURL         string `json:"html_url"`
		Description     string `json:"description,omitempty"`
		Language        string `json:"language,omitempty"`
		StargazersCount int    `json:"stargazers_count"`
		WatchersCount   int    `json:"watchers_count"`
		ForksCount      int    `json:"forks_count"`
	}
)

func (id ProfileID) String() string {
	return string(id)
}

func (id UserID) String() string {
	return string(id)
}
