package service

import "errors"

var (
	ErrInternal            = errors.New("internal server error")
	ErrPostNotFound        = errors.New("post not found")
	ErrInvalidReactionKind = errors.New("invalid reaction kind")
	ErrEmptyContent        = errors.New("content must not be empty")
	ErrContentTooLong      = errors.New("content is too long")
)
