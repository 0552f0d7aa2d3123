package postgres

import (
	"context"
	"time"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	comment.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(post_id, author_id, content, created_at) VALUES($1, $2, $3, $4) RETURNING id",
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.post_id, c.author_id, c.content, c.created_at, u.username, u.display_name, u.avatar_url
		FROM comments c
		JOIN cached_users u ON c.author_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
		LIMIT $2
		OFFSET $3`,
		postID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.FullComment
	for rows.Next() {
		var comment model.FullComment
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Content,
			&comment.Comment.CreatedAt,
			&comment.Author.Username,
			&comment.Author.DisplayName,
			&comment.Author.AvatarURL,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) CountPostComments(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM comments WHERE post_id = $1", postID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
