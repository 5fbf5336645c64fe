package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached to a discovered memory
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Memory is a user-submitted photo and caption sealed in the permafrost.
// Discovered is false until the memory is dug up; self-authored memories
// start discovered so they appear on the home feed immediately.
type Memory struct {
	ID         uuid.UUID `json:"id"`
	Photo      string    `json:"photo"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	Discovered bool      `json:"discovered"`
	Comments   []Comment `json:"comments"`
}
