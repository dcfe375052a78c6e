package sql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/profile-client/internal/profile/app/snapshot"
	"github.com/klwxsrx/profile-client/internal/profile/domain"
	pkgsql "github.com/klwxsrx/profile-client/pkg/sql"
	pkgtime "github.com/klwxsrx/profile-client/pkg/time"
)

const snapshotTable = "profile_state_snapshot"

type snapshotRepository struct {
	db      pkgsql.Client
	builder sq.StatementBuilderType
	clock   pkgtime.Clock
}

func NewSnapshotRepository(
	db pkgsql.Client,
	builder sq.StatementBuilderType,
	clock pkgtime.Clock,
) snapshot.Repository {
	return snapshotRepository{
		db:      db,
		builder: builder,
		clock:   clock,
	}
}

func (r snapshotRepository) Load(ctx context.Context, session string) (*snapshot.Snapshot, error) {
	query, args, err := r.builder.
		Select("session", "state", "updated_at").
		From(snapshotTable).
		Where(sq.Eq{"session": session}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row SqlxSnapshot
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, snapshot.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainSnapshot(row)
}

func (r snapshotRepository) Save(ctx context.Context, s snapshot.Snapshot) error {
	state, err := json.Marshal(s.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	query, args, err := r.builder.
		Insert(snapshotTable).
		Columns("session", "state", "updated_at").
		Values(s.Session, string(state), r.clock.Now(ctx).UnixMilli()).
		Suffix(`on conflict (session) do update set
			state = excluded.state,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r snapshotRepository) Delete(ctx context.Context, session string) error {
	query, args, err := r.builder.Delete(snapshotTable).Where(sq.Eq{"session": session}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return snapshot.ErrSnapshotNotFound
	}

	return nil
}

type SqlxSnapshot struct {
	Session   string `db:"session"`
	State     string `db:"state"`
	UpdatedAt int64  `db:"updated_at"`
}

func toDomainSnapshot(row SqlxSnapshot) (*snapshot.Snapshot, error) {
	var state domain.ProfileState
	err := json.Unmarshal([]byte(row.State), &state)
	if err != nil {
		return nil, fmt.Errorf("decode state of session %s: %w", row.Session, err)
	}

	return &snapshot.Snapshot{
		Session:   row.Session,
		State:     state,
		UpdatedAt: time.UnixMilli(row.UpdatedAt).UTC(),
	}, nil
}
