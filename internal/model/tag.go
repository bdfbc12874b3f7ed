package model

import "time"

// Tag labels articles; the tag string is unique.
type Tag struct {
	ID        string    `json:"id" db:"id"`
	Tag       string    `json:"tag" db:"tag"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
