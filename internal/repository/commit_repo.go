package repo

import (
	"context"
	"database/sql"
	"errors"

	"gitlab-activity-dashboard/internal/lib"
	"gitlab-activity-dashboard/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type CommitRepository interface {
	Save(ctx context.Context, commit *models.Commit) error
	GetByProject(ctx context.Context, projectID int) ([]models.Commit, error)
}

type CommitRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewCommitRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *CommitRepo {
	return &CommitRepo{
		db:     db,
		getter: c,
	}
}

// Save inserts a commit by its content hash; duplicates are ignored.
func (r *CommitRepo) Save(ctx context.Context, commit *models.Commit) error {
	const op = "commit_repo.Save"

	query := `
		INSERT INTO commits (id, short_id, title, message, author_name, author_email,
		                     authored_date, committer_name, committer_email, committed_date,
		                     web_url, additions, deletions, total, project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING;
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		commit.ID,
		commit.ShortID,
		commit.Title,
		commit.Message,
		commit.AuthorName,
		commit.AuthorEmail,
		commit.AuthoredDate,
		commit.CommitterName,
		commit.CommitterEmail,
		commit.CommittedDate,
		commit.WebURL,
		commit.Additions,
		commit.Deletions,
		commit.Total,
		commit.ProjectID,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *CommitRepo) GetByProject(ctx context.Context, projectID int) ([]models.Commit, error) {
	const op = "commit_repo.GetByProject"

	query := `
		SELECT id, short_id, title, message, author_name, author_email,
		       authored_date, committer_name, committer_email, committed_date,
		       web_url, additions, deletions, total, project_id
		FROM commits
		WHERE project_id = $1
		ORDER BY committed_date DESC;
	`

	var commits []models.Commit
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &commits, query, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Commit{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return commits, nil
}
