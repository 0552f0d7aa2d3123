// Package feedsync keeps a feed client's per-post interaction state
// (reactions, trails, comments) in sync with the feed service.
//
// Reactions are applied optimistically: local state changes before the
// request resolves and is reconciled with the server response, or rolled
// back on failure. Trails and comments are server-first: local state only
// changes after the server confirms.
//
// Managers are built one set per rendered post and assume a single
// event-loop style consumer; they are not safe for concurrent use from
// multiple goroutines. Overlapping calls on the same manager follow
// last-response-wins semantics: in-flight requests are never queued or
// aborted, later responses simply overwrite.
package feedsync

import "time"

type ReactionKind string

const (
	ReactionNone      ReactionKind = ""
	ReactionLike      ReactionKind = "like"
	ReactionLove      ReactionKind = "love"
	ReactionLaugh     ReactionKind = "laugh"
	ReactionWow       ReactionKind = "wow"
	ReactionSad       ReactionKind = "sad"
	ReactionAngry     ReactionKind = "angry"
	ReactionCelebrate ReactionKind = "celebrate"
	ReactionThink     ReactionKind = "think"
)

var reactionKinds = map[ReactionKind]struct{}{
	ReactionLike:      {},
	ReactionLove:      {},
	ReactionLaugh:     {},
	ReactionWow:       {},
	ReactionSad:       {},
	ReactionAngry:     {},
	ReactionCelebrate: {},
	ReactionThink:     {},
}

func (k ReactionKind) Valid() bool {
	_, ok := reactionKinds[k]
	return ok
}

// ReactionSnapshot is the canonical reaction state for a post from the
// viewer's perspective: their own reaction (ReactionNone when none) plus
// the aggregate count per kind. All counts are non-negative.
type ReactionSnapshot struct {
	UserReaction ReactionKind
	Counts       map[ReactionKind]int64
}

func (s ReactionSnapshot) Clone() ReactionSnapshot {
	counts := make(map[ReactionKind]int64, len(s.Counts))
	for kind, count := range s.Counts {
		counts[kind] = count
	}

	return ReactionSnapshot{
		UserReaction: s.UserReaction,
		Counts:       counts,
	}
}

// ApplyToggle computes the optimistic state after the viewer reacts with
// kind: reacting with the current kind removes it, any other kind replaces
// it. Decrements floor at zero. The receiver is not modified.
func (s ReactionSnapshot) ApplyToggle(kind ReactionKind) ReactionSnapshot {
	next := s.Clone()

	if s.UserReaction == kind {
		if next.Counts[kind] > 0 {
			next.Counts[kind]--
		}
		next.UserReaction = ReactionNone
		return next
	}

	if s.UserReaction != ReactionNone && next.Counts[s.UserReaction] > 0 {
		next.Counts[s.UserReaction]--
	}
	next.Counts[kind]++
	next.UserReaction = kind

	return next
}

type Author struct {
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

type Trail struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Order     int64     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type TrailEntry struct {
	Trail       Trail  `json:"trail"`
	ContentHTML string `json:"content_html"`
	Author      Author `json:"author"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentEntry struct {
	Comment Comment `json:"comment"`
	Author  Author  `json:"author"`
}
