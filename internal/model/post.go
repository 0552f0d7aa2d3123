package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        int64     `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FullPost struct {
	Post           Post                   `json:"post"`
	ContentHTML    string                 `json:"content_html"`
	Author         UserAuthor             `json:"author"`
	ReactionCounts map[ReactionKind]int64 `json:"reaction_counts"`
	CommentsCount  int64                  `json:"comments_count"`
}

type AuthorPost struct {
	Post           Post                   `json:"post"`
	ReactionCounts map[ReactionKind]int64 `json:"reaction_counts"`
	CommentsCount  int64                  `json:"comments_count"`
}
