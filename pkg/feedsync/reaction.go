package feedsync

import "context"

// ReactionManager tracks one post's reaction state for the viewer and
// applies toggles optimistically: snapshot, apply, then confirm against the
// server response or roll the snapshot back.
type ReactionManager struct {
	client *Client
	postID int64
	state  ReactionSnapshot
}

// NewReactionManager seeds the manager with the state the post was
// rendered with (typically from the feed payload).
func NewReactionManager(client *Client, postID int64, initial ReactionSnapshot) *ReactionManager {
	if initial.Counts == nil {
		initial.Counts = make(map[ReactionKind]int64)
	}

	return &ReactionManager{
		client: client,
		postID: postID,
		state:  initial.Clone(),
	}
}

func (m *ReactionManager) State() ReactionSnapshot {
	return m.state.Clone()
}

// React toggles the viewer's reaction. Local state reflects the change
// before the request resolves; the server response then replaces it, so
// concurrent reactions from other users are picked up. On failure the
// pre-call state is restored exactly and the error returned — the caller
// decides whether to surface it, nothing is retried.
//
// Calls are not serialized: a second React before the first resolves
// snapshots from the already-optimistic state, and whichever response
// lands last wins.
func (m *ReactionManager) React(ctx context.Context, kind ReactionKind) (ReactionSnapshot, error) {
	if !kind.Valid() {
		return m.State(), &ValidationError{Field: "reaction", Reason: "unknown kind " + string(kind)}
	}
	if !m.client.Authenticated() {
		return m.State(), ErrUnauthenticated
	}

	previous := m.state.Clone()
	m.state = m.state.ApplyToggle(kind)

	confirmed, err := m.client.React(ctx, m.postID, kind)
	if err != nil {
		m.state = previous
		return m.State(), err
	}

	m.state = confirmed.Clone()
	return m.State(), nil
}

// Refresh replaces local state with the server's current aggregate.
func (m *ReactionManager) Refresh(ctx context.Context) (ReactionSnapshot, error) {
	snap, err := m.client.FetchReactions(ctx, m.postID)
	if err != nil {
		return m.State(), err
	}

	m.state = snap.Clone()
	return m.State(), nil
}
