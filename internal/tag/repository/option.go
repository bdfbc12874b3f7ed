package repository

import "github.com/nglume/nglume/internal/model"

// GetOptions contains filtering options for tag listing.
type GetOptions struct {
	Search string
}

// CreateOptions contains options for creating a tag.
type CreateOptions struct {
	Tag model.Tag
}
