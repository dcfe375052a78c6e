package domain

type (
	// ProfileState is the in-memory view of profile data for one session.
	ProfileState struct {
		Profile   *Profile   `json:"profile"`
		Profiles  []Profile  `json:"profiles"`
		Repos     []Repo     `json:"repos"`
		Followers []Follower `json:"followers"`
		Loading   bool       `json:"loading"`
		Error     ErrorInfo  `json:"error"`
	}

	ErrorInfo struct {
		Message    string `json:"msg,omitempty"`
		StatusCode int    `json:"status,omitempty"`
	}
)

// InitialState is the state a session starts with: nothing loaded yet and loading in progress.
// Repos stays nil until the first fetch or clear, so it encodes as null.
func InitialState() ProfileState {
	return ProfileState{
		Profile:   nil,
		Profiles:  []Profile{},
		Repos:     nil,
		Followers: []Follower{},
		Loading:   true,
		Error:     ErrorInfo{},
	}
}
