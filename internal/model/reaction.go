package model

// ReactionKind is one of the fixed set of reactions a viewer may attach to
// a post. A user holds at most one reaction per post.
type ReactionKind string

const (
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
