package postgres

import (
	"context"
	"time"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type trailRepo struct {
	db *pgxpool.Pool
}

func newTrailRepo(db *pgxpool.Pool) Trail {
	return &trailRepo{
		db: db,
	}
}

// Create assigns ord as MAX(ord)+1 for the parent post inside the insert
// statement itself; the unique (post_id, ord) index guarantees concurrent
// appends never share an order number.
func (r *trailRepo) Create(ctx context.Context, trail model.Trail) (*model.Trail, error) {
	trail.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO trails(post_id, author_id, content, image_url, ord, created_at)
		SELECT $1, $2, $3, $4, COALESCE(MAX(ord), 0) + 1, $5 FROM trails WHERE post_id = $1
		RETURNING id, ord`,
		trail.PostID,
		trail.AuthorID,
		trail.Content,
		trail.ImageURL,
		trail.CreatedAt,
	).Scan(&trail.ID, &trail.Ord); err != nil {
		return nil, err
	}

	return &trail, nil
}

func (r *trailRepo) FindPostTrails(ctx context.Context, postID int64) ([]*model.FullTrail, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		t.id, t.post_id, t.author_id, t.content, t.image_url, t.ord, t.created_at, u.username, u.display_name, u.avatar_url
		FROM trails t
		JOIN cached_users u ON t.author_id = u.id
		WHERE t.post_id = $1
		ORDER BY t.ord ASC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trails []*model.FullTrail
	for rows.Next() {
		var trail model.FullTrail
		if err := rows.Scan(
			&trail.Trail.ID,
			&trail.Trail.PostID,
			&trail.Trail.AuthorID,
			&trail.Trail.Content,
			&trail.Trail.ImageURL,
			&trail.Trail.Ord,
			&trail.Trail.CreatedAt,
			&trail.Author.Username,
			&trail.Author.DisplayName,
			&trail.Author.AvatarURL,
		); err != nil {
			return nil, err
		}

		trails = append(trails, &trail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trails, nil
}
