package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/CampusConnect/feed-service/internal/repository"
	"github.com/CampusConnect/feed-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const MAX_COMMENT_LENGTH = 500

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(input.Content) > MAX_COMMENT_LENGTH {
		return nil, ErrContentTooLong
	}

	exists, err := s.repo.Postgres.Post.Exists(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%d) existence: %s", postID, err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  input.Content,
	}

	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", authorID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	s.invalidateCommentCaches(ctx, postID)

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	cachedComments, err := redisrepo.GetMany[model.FullComment](s.repo.Redis.Default, ctx, redisrepo.PostCommentsKey(postID, limit, offset))
	if err == nil {
		return cachedComments, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) comments from redis: %s", postID, err.Error())
		return nil, ErrInternal
	}

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostCommentsKey(postID, limit, offset), comments, time.Minute*10); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) comments in redis: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

// Comment lists are cached per page, so invalidation walks the key pattern.
func (s *commentService) invalidateCommentCaches(ctx context.Context, postID int64) {
	keys, err := s.repo.Redis.Default.Keys(ctx, redisrepo.PostCommentsPattern(postID)).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to list post(%d) comment cache keys: %s", postID, err.Error())
		return
	}

	keys = append(keys, redisrepo.PostKey(postID))
	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%d) comment caches: %s", postID, err.Error())
	}
}
