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
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type trailService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	formatter *markup.Formatter
}

func newTrailService(logger *zap.Logger, repo *repository.Repository, formatter *markup.Formatter) Trail {
	return &trailService{
		logger:    logger,
		repo:      repo,
		formatter: formatter,
	}
}

func (s *trailService) Create(ctx context.Context, postID int64, authorID uuid.UUID, input dto.CreateTrailRequest) (*model.Trail, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}

	exists, err := s.repo.Postgres.Post.Exists(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%d) existence: %s", postID, err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	trail := model.Trail{
		PostID:   postID,
		AuthorID: authorID,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}

	createdTrail, err := s.repo.Postgres.Trail.Create(ctx, trail)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) trail on post(%d): %s", authorID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostTrailsKey(postID)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%d) trails cache: %s", postID, err.Error())
	}

	return createdTrail, nil
}

func (s *trailService) FindPostTrails(ctx context.Context, postID int64) ([]*model.FullTrail, error) {
	cachedTrails, err := redisrepo.GetMany[model.FullTrail](s.repo.Redis.Default, ctx, redisrepo.PostTrailsKey(postID))
	if err == nil {
		return cachedTrails, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) trails from redis: %s", postID, err.Error())
		return nil, ErrInternal
	}

	trails, err := s.repo.Postgres.Trail.FindPostTrails(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) trails from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	for _, trail := range trails {
		trail.ContentHTML = s.formatter.Format(trail.Trail.Content)
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostTrailsKey(postID), trails, time.Minute*10); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) trails in redis: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return trails, nil
}
