package model

import (
	"time"

	"github.com/google/uuid"
)

// Trail is a threaded reply attached to a post. Ord is assigned by the
// database at insert time and is unique and increasing per post; gaps may
// appear after deletions.
type Trail struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Ord       int64     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type FullTrail struct {
	Trail       Trail      `json:"trail"`
	ContentHTML string     `json:"content_html"`
	Author      UserAuthor `json:"author"`
}
