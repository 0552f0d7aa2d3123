package feedsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Client talks to the feed service REST API. Timeouts are whatever the
// underlying http.Client enforces; pass one via WithHTTPClient to change
// them.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
	logger      *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAccessToken sets the bearer token attached to every request. Without
// it the client is an unauthenticated viewer and every mutating operation
// fails with ErrUnauthenticated before touching the network.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a client for the feed service. baseURL is the API root
// the post paths hang off, e.g. "https://feed.example.com/api/v1".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Authenticated() bool {
	return c.accessToken != ""
}

func (c *Client) do(ctx context.Context, method string, path string, reqBody interface{}, out interface{}) error {
	op := method + " " + path

	var bodyReader io.Reader
	if reqBody != nil {
		bodyJSON, err := json.Marshal(reqBody)
		if err != nil {
			return &RequestError{Kind: ErrorKindNetwork, Op: op, Err: err}
		}
		bodyReader = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return &RequestError{Kind: ErrorKindNetwork, Op: op, Err: err}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("request failed(%s): %s", op, err.Error())
		return &RequestError{Kind: ErrorKindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Kind: ErrorKindNetwork, Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Sugar().Errorf("request failed(%s): status %d", op, resp.StatusCode)
		return &RequestError{Kind: ErrorKindServer, Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &RequestError{Kind: ErrorKindServer, Op: op, StatusCode: resp.StatusCode, Err: err}
		}
	}

	return nil
}

// reactionResponse covers both wire shapes the react endpoints may answer
// with: the enhanced multi-reaction shape and the legacy boolean like
// shape. The discriminator is presence of the reactionCounts field.
type reactionResponse struct {
	ReactionCounts map[ReactionKind]int64 `json:"reactionCounts"`
	UserReaction   *ReactionKind          `json:"userReaction"`
	Liked          *bool                  `json:"liked"`
	LikeCount      *int64                 `json:"likeCount"`
}

func (r *reactionResponse) normalize(op string) (*ReactionSnapshot, error) {
	switch {
	case r.ReactionCounts != nil:
		snap := ReactionSnapshot{Counts: make(map[ReactionKind]int64, len(r.ReactionCounts))}
		for kind, count := range r.ReactionCounts {
			snap.Counts[kind] = count
		}
		if r.UserReaction != nil {
			snap.UserReaction = *r.UserReaction
		}
		return &snap, nil
	case r.Liked != nil:
		snap := ReactionSnapshot{Counts: make(map[ReactionKind]int64, 1)}
		if r.LikeCount != nil {
			snap.Counts[ReactionLike] = *r.LikeCount
		}
		if *r.Liked {
			snap.UserReaction = ReactionLike
		}
		return &snap, nil
	default:
		return nil, &RequestError{Kind: ErrorKindServer, Op: op, Err: fmt.Errorf("response matches neither reaction shape")}
	}
}

type reactRequest struct {
	ReactionType ReactionKind `json:"reactionType"`
}

func (c *Client) React(ctx context.Context, postID int64, kind ReactionKind) (*ReactionSnapshot, error) {
	path := fmt.Sprintf("/posts/%d/react", postID)

	var resp reactionResponse
	if err := c.do(ctx, http.MethodPost, path, reactRequest{ReactionType: kind}, &resp); err != nil {
		return nil, err
	}

	return resp.normalize("POST " + path)
}

func (c *Client) FetchReactions(ctx context.Context, postID int64) (*ReactionSnapshot, error) {
	path := fmt.Sprintf("/posts/%d/react", postID)

	var resp reactionResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return resp.normalize("GET " + path)
}

func (c *Client) LoadTrails(ctx context.Context, postID int64) ([]TrailEntry, error) {
	var resp struct {
		Trails []TrailEntry `json:"trails"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/trails", postID), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Trails, nil
}

type appendTrailRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (c *Client) AppendTrail(ctx context.Context, postID int64, content string, imageURL *string) (*Trail, error) {
	var resp struct {
		Trail Trail `json:"trail"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/trails", postID), appendTrailRequest{Content: content, ImageURL: imageURL}, &resp); err != nil {
		return nil, err
	}

	return &resp.Trail, nil
}

func (c *Client) LoadComments(ctx context.Context, postID int64) ([]CommentEntry, error) {
	var resp struct {
		Comments []CommentEntry `json:"comments"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/comment", postID), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Comments, nil
}

type appendCommentRequest struct {
	Content string `json:"content"`
}

func (c *Client) AppendComment(ctx context.Context, postID int64, content string) (*Comment, error) {
	var resp struct {
		Comment Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/comment", postID), appendCommentRequest{Content: content}, &resp); err != nil {
		return nil, err
	}

	return &resp.Comment, nil
}
