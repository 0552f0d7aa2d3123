package feedsync

import (
	"context"
	"strings"
)

// PanelState is the trail panel's load state. The list is fetched lazily on
// first expand and cached; collapsing the panel afterwards is a pure UI
// concern and does not leave Expanded.
type PanelState int

const (
	PanelCollapsed PanelState = iota
	PanelLoading
	PanelExpanded
)

func (s PanelState) String() string {
	switch s {
	case PanelCollapsed:
		return "collapsed"
	case PanelLoading:
		return "loading"
	case PanelExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// TrailManager owns one post's ordered trail list. Loads replace the list
// wholesale; the client never reorders or renumbers, order numbers come
// from the server.
type TrailManager struct {
	client *Client
	postID int64
	state  PanelState
	trails []TrailEntry
}

func NewTrailManager(client *Client, postID int64) *TrailManager {
	return &TrailManager{
		client: client,
		postID: postID,
		state:  PanelCollapsed,
	}
}

func (m *TrailManager) State() PanelState {
	return m.state
}

func (m *TrailManager) Trails() []TrailEntry {
	trails := make([]TrailEntry, len(m.trails))
	copy(trails, m.trails)
	return trails
}

// Expand fetches the trail list on first call; afterwards it answers from
// the cache. A failed fetch drops back to Collapsed so the next expand
// retries.
func (m *TrailManager) Expand(ctx context.Context) ([]TrailEntry, error) {
	if m.state == PanelExpanded {
		return m.Trails(), nil
	}

	m.state = PanelLoading
	trails, err := m.client.LoadTrails(ctx, m.postID)
	if err != nil {
		m.state = PanelCollapsed
		return nil, err
	}

	m.trails = trails
	m.state = PanelExpanded
	return m.Trails(), nil
}

// Reload forces a fetch regardless of panel state. On failure the cached
// list stays untouched.
func (m *TrailManager) Reload(ctx context.Context) error {
	trails, err := m.client.LoadTrails(ctx, m.postID)
	if err != nil {
		return err
	}

	m.trails = trails
	m.state = PanelExpanded
	return nil
}

// Append creates a trail on the server, then reloads the whole list so the
// local copy matches the authoritative order even under concurrent appends
// by other users. If the reload itself fails, the confirmed trail is
// appended locally instead — its server-assigned order is already final.
// A failed create leaves the list untouched.
func (m *TrailManager) Append(ctx context.Context, content string, imageURL *string) (*Trail, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if !m.client.Authenticated() {
		return nil, ErrUnauthenticated
	}

	created, err := m.client.AppendTrail(ctx, m.postID, content, imageURL)
	if err != nil {
		return nil, err
	}

	if err := m.Reload(ctx); err != nil {
		m.client.logger.Sugar().Warnf("trail reload after append failed for post(%d): %s", m.postID, err.Error())
		m.trails = append(m.trails, TrailEntry{Trail: *created})
		m.state = PanelExpanded
	}

	return created, nil
}
