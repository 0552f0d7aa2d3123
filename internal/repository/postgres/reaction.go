package postgres

import (
	"context"
	"errors"

	"github.com/CampusConnect/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reactionRepo struct {
	db *pgxpool.Pool
}

func newReactionRepo(db *pgxpool.Pool) Reaction {
	return &reactionRepo{
		db: db,
	}
}

// Toggle applies "same kind removes, different kind replaces" inside a single
// transaction and returns the viewer's resulting reaction (nil when removed).
func (r *reactionRepo) Toggle(ctx context.Context, postID int64, userID uuid.UUID, kind model.ReactionKind) (*model.ReactionKind, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current model.ReactionKind
	err = tx.QueryRow(
		ctx,
		"SELECT reaction_type FROM post_reactions WHERE post_id = $1 AND user_id = $2 FOR UPDATE",
		postID,
		userID,
	).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var result *model.ReactionKind
	if err == nil && current == kind {
		if _, err := tx.Exec(
			ctx,
			"DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2",
			postID,
			userID,
		); err != nil {
			return nil, err
		}
	} else {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO post_reactions(post_id, user_id, reaction_type) VALUES($1, $2, $3)
			ON CONFLICT (post_id, user_id) DO UPDATE SET reaction_type = EXCLUDED.reaction_type`,
			postID,
			userID,
			kind,
		); err != nil {
			return nil, err
		}
		result = &kind
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reactionRepo) Counts(ctx context.Context, postID int64) (map[model.ReactionKind]int64, error) {
	return countReactions(ctx, r.db, postID)
}

func (r *reactionRepo) UserReaction(ctx context.Context, postID int64, userID uuid.UUID) (*model.ReactionKind, error) {
	var kind model.ReactionKind
	err := r.db.QueryRow(
		ctx,
		"SELECT reaction_type FROM post_reactions WHERE post_id = $1 AND user_id = $2",
		postID,
		userID,
	).Scan(&kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &kind, nil
}

func countReactions(ctx context.Context, db *pgxpool.Pool, postID int64) (map[model.ReactionKind]int64, error) {
	rows, err := db.Query(
		ctx,
		"SELECT reaction_type, COUNT(*) FROM post_reactions WHERE post_id = $1 GROUP BY reaction_type",
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.ReactionKind]int64)
	for rows.Next() {
		var (
			kind  model.ReactionKind
			count int64
		)
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
