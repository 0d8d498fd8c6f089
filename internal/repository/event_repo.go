package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitlab-activity-dashboard/internal/lib"
	"gitlab-activity-dashboard/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type EventRepository interface {
	Save(ctx context.Context, event *models.Event) error
	Get(ctx context.Context, since, until *time.Time) ([]models.Event, error)
	GetByUser(ctx context.Context, userID int, since, until *time.Time) ([]models.Event, error)
}

type EventRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEventRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EventRepo {
	return &EventRepo{
		db:     db,
		getter: c,
	}
}

// eventRow is the flattened table shape: the push payload lives in
// nullable columns instead of a nested record.
type eventRow struct {
	ID              int64     `db:"id"`
	UserID          int       `db:"user_id"`
	ProjectID       int       `db:"project_id"`
	ActionName      string    `db:"action_name"`
	TargetID        *int64    `db:"target_id"`
	TargetType      *string   `db:"target_type"`
	TargetTitle     *string   `db:"target_title"`
	CreatedAt       time.Time `db:"created_at"`
	PushCommitCount *int      `db:"push_commit_count"`
	PushAction      *string   `db:"push_action"`
	PushRefType     *string   `db:"push_ref_type"`
	PushRef         *string   `db:"push_ref"`
}

func (row eventRow) toModel() models.Event {
	e := models.Event{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		ActionName:  row.ActionName,
		TargetID:    row.TargetID,
		TargetType:  row.TargetType,
		AuthorID:    row.UserID,
		TargetTitle: row.TargetTitle,
		CreatedAt:   row.CreatedAt,
	}

	// push_action is the presence marker: a stored push payload always has
	// one, while commit count may legitimately be zero.
	if row.PushAction != nil {
		pd := models.PushData{Action: *row.PushAction}
		if row.PushCommitCount != nil {
			pd.CommitCount = *row.PushCommitCount
		}
		if row.PushRefType != nil {
			pd.RefType = *row.PushRefType
		}
		if row.PushRef != nil {
			pd.Ref = *row.PushRef
		}
		e.PushData = &pd
	}

	return e
}

// Save inserts an event by its natural id; re-ingesting a seen id is a no-op.
func (r *EventRepo) Save(ctx context.Context, event *models.Event) error {
	const op = "event_repo.Save"

	query := `
		INSERT INTO events (id, user_id, project_id, action_name, target_id, target_type,
		                    target_title, created_at, push_commit_count, push_action,
		                    push_ref_type, push_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING;
	`

	var commitCount *int
	var action, refType, ref *string
	if pd := event.PushData; pd != nil {
		commitCount = &pd.CommitCount
		action = &pd.Action
		refType = &pd.RefType
		ref = &pd.Ref
	}

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		event.ID,
		event.AuthorID,
		event.ProjectID,
		event.ActionName,
		event.TargetID,
		event.TargetType,
		event.TargetTitle,
		event.CreatedAt,
		commitCount,
		action,
		refType,
		ref,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *EventRepo) Get(ctx context.Context, since, until *time.Time) ([]models.Event, error) {
	const op = "event_repo.Get"

	query := `
		SELECT id, user_id, project_id, action_name, target_id, target_type,
		       target_title, created_at, push_commit_count, push_action,
		       push_ref_type, push_ref
		FROM events
	`

	var args []any
	var conditions string
	if since != nil {
		args = append(args, *since)
		conditions += fmt.Sprintf(" WHERE created_at >= $%d", len(args))
	}
	if until != nil {
		args = append(args, *until)
		if conditions == "" {
			conditions += fmt.Sprintf(" WHERE created_at <= $%d", len(args))
		} else {
			conditions += fmt.Sprintf(" AND created_at <= $%d", len(args))
		}
	}
	query += conditions + " ORDER BY created_at DESC;"

	return r.selectEvents(ctx, op, query, args...)
}

func (r *EventRepo) GetByUser(ctx context.Context, userID int, since, until *time.Time) ([]models.Event, error) {
	const op = "event_repo.GetByUser"

	query := `
		SELECT id, user_id, project_id, action_name, target_id, target_type,
		       target_title, created_at, push_commit_count, push_action,
		       push_ref_type, push_ref
		FROM events
		WHERE user_id = $1
	`

	args := []any{userID}
	if since != nil {
		args = append(args, *since)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if until != nil {
		args = append(args, *until)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	return r.selectEvents(ctx, op, query, args...)
}

func (r *EventRepo) selectEvents(ctx context.Context, op, query string, args ...any) ([]models.Event, error) {
	var rows []eventRow
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Event{}, nil
		}
		return nil, lib.Err(op, err)
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toModel())
	}

	return events, nil
}
