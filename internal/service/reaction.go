package service

import (
	"context"
	"time"

	"github.com/CampusConnect/feed-service/internal/dto"
	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/CampusConnect/feed-service/internal/repository"
	"github.com/CampusConnect/feed-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type reactionService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newReactionService(logger *zap.Logger, repo *repository.Repository) Reaction {
	return &reactionService{
		logger: logger,
		repo:   repo,
	}
}

// React applies toggle semantics: reacting with the viewer's current kind
// removes it, any other kind replaces it. The response always carries the
// authoritative aggregate so clients can reconcile optimistic state.
func (s *reactionService) React(ctx context.Context, postID int64, userID uuid.UUID, kind model.ReactionKind) (*dto.ReactionStateResponse, error) {
	if !kind.Valid() {
		return nil, ErrInvalidReactionKind
	}

	exists, err := s.repo.Postgres.Post.Exists(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%d) existence: %s", postID, err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	userReaction, err := s.repo.Postgres.Reaction.Toggle(ctx, postID, userID, kind)
	if err != nil {
		s.logger.Sugar().Errorf("failed to toggle user(%s) reaction on post(%d): %s", userID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	counts, err := s.repo.Postgres.Reaction.Counts(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count post(%d) reactions: %s", postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostReactionsKey(postID), redisrepo.PostKey(postID)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%d) reaction cache: %s", postID, err.Error())
	}

	return &dto.ReactionStateResponse{
		ReactionCounts: counts,
		UserReaction:   userReaction,
	}, nil
}

func (s *reactionService) Get(ctx context.Context, postID int64, viewerID *uuid.UUID) (*dto.ReactionStateResponse, error) {
	counts, err := s.getCounts(ctx, postID)
	if err != nil {
		return nil, err
	}

	response := &dto.ReactionStateResponse{
		ReactionCounts: counts,
	}

	if viewerID != nil {
		userReaction, err := s.repo.Postgres.Reaction.UserReaction(ctx, postID, *viewerID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to get user(%s) reaction on post(%d): %s", viewerID.String(), postID, err.Error())
			return nil, ErrInternal
		}
		response.UserReaction = userReaction
	}

	return response, nil
}

// getCounts reads the aggregate through redis; the viewer's own reaction is
// never cached because it is per-user.
func (s *reactionService) getCounts(ctx context.Context, postID int64) (map[model.ReactionKind]int64, error) {
	cached, err := redisrepo.Get[map[model.ReactionKind]int64](s.repo.Redis.Default, ctx, redisrepo.PostReactionsKey(postID))
	if err == nil && cached != nil {
		return *cached, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) reactions from redis: %s", postID, err.Error())
		return nil, ErrInternal
	}

	counts, err := s.repo.Postgres.Reaction.Counts(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count post(%d) reactions: %s", postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostReactionsKey(postID), counts, time.Minute*5); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) reactions in redis: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return counts, nil
}
