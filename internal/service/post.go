package service

import (
	"context"
	"strings"
	"time"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/markup"
	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/CampusConnect/feed-service/internal/repository"
	"github.com/CampusConnect/feed-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type postService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	formatter *markup.Formatter
}

func newPostService(logger *zap.Logger, repo *repository.Repository, formatter *markup.Formatter) Post {
	return &postService{
		logger:    logger,
		repo:      repo,
		formatter: formatter,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}

	post := model.Post{
		AuthorID: authorID,
		Content:  input.Content,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	cachedPost, err := redisrepo.Get[model.FullPost](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
	if err == nil {
		return cachedPost, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) from redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	post.ContentHTML = s.formatter.Format(post.Post.Content)

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id), post, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) in redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error) {
	posts, err := s.repo.Postgres.Post.FindAuthorPosts(ctx, authorID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}
