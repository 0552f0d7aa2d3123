package postgres

import (
	"context"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userCacheRepo struct {
	db *pgxpool.Pool
}

func newUserCacheRepo(db *pgxpool.Pool) UserCache {
	return &userCacheRepo{
		db: db,
	}
}

func (r *userCacheRepo) Create(ctx context.Context, cachedUser model.CachedUser) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO cached_users(id, username, display_name, avatar_url) VALUES($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, display_name = EXCLUDED.display_name, avatar_url = EXCLUDED.avatar_url`,
		cachedUser.ID,
		cachedUser.Username,
		cachedUser.DisplayName,
		cachedUser.AvatarURL,
	)
	return err
}

func (r *userCacheRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error) {
	var user model.CachedUser
	if err := r.db.QueryRow(
		ctx,
		"SELECT id, username, display_name, avatar_url FROM cached_users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Username, &user.DisplayName, &user.AvatarURL); err != nil {
		return nil, err
	}

	return &user, nil
}
