package postgres

import (
	"context"
	"time"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, content, created_at, updated_at) VALUES($1, $2, $3, $4) RETURNING id",
		post.AuthorID,
		post.Content,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	var (
		post          model.Post
		author        model.UserAuthor
		commentsCount int64
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		p.id, p.author_id, p.content, p.created_at, p.updated_at, u.username, u.display_name, u.avatar_url,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		JOIN cached_users u ON p.author_id = u.id
		WHERE p.id = $1`,
		id,
	).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.Username,
		&author.DisplayName,
		&author.AvatarURL,
		&commentsCount,
	); err != nil {
		return nil, err
	}

	counts, err := countReactions(ctx, r.db, post.ID)
	if err != nil {
		return nil, err
	}

	return &model.FullPost{
		Post:           post,
		Author:         author,
		ReactionCounts: counts,
		CommentsCount:  commentsCount,
	}, nil
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.content, p.created_at, p.updated_at,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2
		OFFSET $3`,
		authorID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.AuthorPost
	for rows.Next() {
		var post model.AuthorPost
		if err := rows.Scan(
			&post.Post.ID,
			&post.Post.AuthorID,
			&post.Post.Content,
			&post.Post.CreatedAt,
			&post.Post.UpdatedAt,
			&post.CommentsCount,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, post := range posts {
		counts, err := countReactions(ctx, r.db, post.Post.ID)
		if err != nil {
			return nil, err
		}
		post.ReactionCounts = counts
	}

	return posts, nil
}

func (r *postRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
