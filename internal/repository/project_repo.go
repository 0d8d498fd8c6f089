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

type ProjectRepository interface {
	Save(ctx context.Context, project *models.Project) error
	GetAll(ctx context.Context) ([]models.Project, error)
}

type ProjectRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewProjectRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ProjectRepo {
	return &ProjectRepo{
		db:     db,
		getter: c,
	}
}

// Save upserts a project by its GitLab id.
func (r *ProjectRepo) Save(ctx context.Context, project *models.Project) error {
	const op = "project_repo.Save"

	query := `
		INSERT INTO projects (id, name, name_with_namespace, path, path_with_namespace,
		                      web_url, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			name_with_namespace = EXCLUDED.name_with_namespace,
			path = EXCLUDED.path,
			path_with_namespace = EXCLUDED.path_with_namespace,
			web_url = EXCLUDED.web_url,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW();
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		project.ID,
		project.Name,
		project.NameWithNamespace,
		project.Path,
		project.PathWithNamespace,
		project.WebURL,
		project.AvatarURL,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *ProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	const op = "project_repo.GetAll"

	query := `
		SELECT id, name, name_with_namespace, path, path_with_namespace,
		       web_url, avatar_url, created_at, updated_at
		FROM projects
		ORDER BY name;
	`

	var projects []models.Project
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &projects, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Project{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return projects, nil
}
