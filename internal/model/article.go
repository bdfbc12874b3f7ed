package model

import "time"

// Article is a published or draft piece of content owned by its author.
type Article struct {
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Permalink *string    `json:"permalink,omitempty" db:"permalink"`
	Content   string     `json:"content" db:"content"`
	Excerpt   *string    `json:"excerpt,omitempty" db:"excerpt"`
	AuthorID  string     `json:"author_id" db:"author_id"`
	Draft     bool       `json:"draft" db:"draft"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`

	// Tags is loaded separately; not a column.
	Tags []Tag `json:"tags,omitempty" db:"-"`
}
