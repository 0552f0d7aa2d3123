package postgres

import (
	"context"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type Reaction interface {
	Toggle(ctx context.Context, postID int64, userID uuid.UUID, kind model.ReactionKind) (*model.ReactionKind, error)
	Counts(ctx context.Context, postID int64) (map[model.ReactionKind]int64, error)
	UserReaction(ctx context.Context, postID int64, userID uuid.UUID) (*model.ReactionKind, error)
}

type Trail interface {
	Create(ctx context.Context, trail model.Trail) (*model.Trail, error)
	FindPostTrails(ctx context.Context, postID int64) ([]*model.FullTrail, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	CountPostComments(ctx context.Context, postID int64) (int64, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type PostgresRepository struct {
	Post
	Reaction
	Trail
	Comment
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:      newPostRepo(db),
		Reaction:  newReactionRepo(db),
		Trail:     newTrailRepo(db),
		Comment:   newCommentRepo(db),
		UserCache: newUserCacheRepo(db),
	}
}
