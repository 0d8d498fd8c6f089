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

type UserRepository interface {
	Save(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID int) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

// Save upserts a user by its GitLab id, refreshing mutable fields
// and the updated_at marker on re-ingestion.
func (r *UserRepo) Save(ctx context.Context, user *models.User) error {
	const op = "user_repo.Save"

	query := `
		INSERT INTO users (id, username, name, state, avatar_url, web_url, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			name = EXCLUDED.name,
			state = EXCLUDED.state,
			avatar_url = EXCLUDED.avatar_url,
			web_url = EXCLUDED.web_url,
			email = EXCLUDED.email,
			updated_at = NOW();
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Name,
		user.State,
		user.AvatarURL,
		user.WebURL,
		user.Email,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID int) (*models.User, error) {
	const op = "user_repo.GetByID"

	query := `
		SELECT id, username, name, state, avatar_url, web_url, email, created_at, updated_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	const op = "user_repo.GetAll"

	query := `
		SELECT id, username, name, state, avatar_url, web_url, email, created_at, updated_at
		FROM users
		ORDER BY name;
	`

	var users []models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.User{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}
