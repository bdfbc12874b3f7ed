package article

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrPermalinkInUse  = errors.New("permalink already in use")
	ErrForbidden       = errors.New("forbidden")
	ErrUnknownTag      = errors.New("unknown tag")
)
