package http

import (
	"errors"
	"fmt"

	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

var (
	errMissingID   = errors.New("missing _id")
	errDuplicateID = errors.New("duplicate _id")
)

func toDomainProfile(out ProfileOut) (domain.Profile, error) {
	if out.ID == "" {
		return domain.Profile{}, fmt.Errorf("profile: %w", errMissingID)
	}

	for _, experience := range out.Experience {
		if experience.ID == "" {
			return domain.Profile{}, fmt.Errorf("profile %s experience: %w", out.ID, errMissingID)
		}
	}
	for _, education := range out.Education {
		if education.ID == "" {
			return domain.Profile{}, fmt.Errorf("profile %s education: %w", out.ID, errMissingID)
		}
	}

	skills := []string(out.Skills)
	if skills == nil {
		skills = []string{}
	}

	return domain.Profile{
		ID:             out.ID,
		User:           domain.User(out.User),
		Company:        out.Company,
		Website:        out.Website,
		Location:       out.Location,
		Status:         out.Status,
		Skills:         skills,
		Bio:            out.Bio,
		GithubUsername: out.GithubUsername,
		Experience:     nonNil(out.Experience),
		Education:      nonNil(out.Education),
		Social:         out.Social,
		Followers:      toDomainFollowers(out.Followers),
		Date:           out.Date,
	}, nil
}

// toDomainProfiles rejects lists where two profiles share an id, the reducer matches profiles by id.
func toDomainProfiles(outs []ProfileOut) ([]domain.Profile, error) {
	result := make([]domain.Profile, 0, len(outs))
	seen := make(map[domain.ProfileID]struct{}, len(outs))
	for _, out := range outs {
		profile, err := toDomainProfile(out)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[profile.ID]; ok {
			return nil, fmt.Errorf("profile %s: %w", profile.ID, errDuplicateID)
		}
		seen[profile.ID] = struct{}{}

		result = append(result, profile)
	}

	return result, nil
}

func toDomainFollowers(outs []FollowerOut) []domain.Follower {
	result := make([]domain.Follower, 0, len(outs))
	for _, out := range outs {
		result = append(result, domain.Follower(out))
	}
	return result
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
