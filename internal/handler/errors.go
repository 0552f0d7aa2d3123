package handler

import "errors"

var (
	errNotAuthorized           = errors.New("user is not authorized")
	errInvalidPostID           = errors.New("invalid post ID")
	errLimitAndOffsetMustBeInt = errors.New("limit and offset must be int")
)
