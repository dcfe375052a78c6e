//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Repository=Repository"
package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

const DefaultSession = "default"

var ErrSnapshotNotFound = errors.New("profile state snapshot not found")

type (
	// Snapshot is the profile state of a named session as it was after the last command.
	Snapshot struct {
		Session   string
		State     domain.ProfileState
		UpdatedAt time.Time
	}

	Repository interface {
		Load(ctx context.Context, session string) (*Snapshot, error)
		Save(ctx context.Context, snapshot Snapshot) error
		Delete(ctx context.Context, session string) error
	}
)
