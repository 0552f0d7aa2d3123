package feedsync

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MaxCommentLength is enforced locally before any network call.
const MaxCommentLength = 500

// CommentManager owns one post's comment list. Unlike reactions, appends
// are server-first: the local list only changes after the server confirms,
// so a failed append never leaves a phantom comment behind.
type CommentManager struct {
	client   *Client
	postID   int64
	loaded   bool
	comments []CommentEntry
}

func NewCommentManager(client *Client, postID int64) *CommentManager {
	return &CommentManager{
		client: client,
		postID: postID,
	}
}

func (m *CommentManager) Loaded() bool {
	return m.loaded
}

func (m *CommentManager) Comments() []CommentEntry {
	comments := make([]CommentEntry, len(m.comments))
	copy(comments, m.comments)
	return comments
}

// Load replaces the local list with the server's. On failure the existing
// list stays untouched.
func (m *CommentManager) Load(ctx context.Context) ([]CommentEntry, error) {
	comments, err := m.client.LoadComments(ctx, m.postID)
	if err != nil {
		return nil, err
	}

	m.comments = comments
	m.loaded = true
	return m.Comments(), nil
}

// Append validates locally, creates the comment on the server and appends
// the confirmed comment to the in-memory list. Comment order has no
// adjacency invariant, so no reload is needed.
func (m *CommentManager) Append(ctx context.Context, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return nil, &ValidationError{Field: "content", Reason: "exceeds maximum length"}
	}
	if !m.client.Authenticated() {
		return nil, ErrUnauthenticated
	}

	created, err := m.client.AppendComment(ctx, m.postID, content)
	if err != nil {
		return nil, err
	}

	m.comments = append(m.comments, CommentEntry{Comment: *created})
	return created, nil
}
