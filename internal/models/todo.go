package models

import (
	"time"
)

// Todo represents a todo item
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	Completed   bool      `json:"completed"`
}

// TodoCreate is the request payload for creating a todo. Priority is a
// pointer so an omitted field can default to 1.
type TodoCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
}

// TodoUpdate is the request payload for a partial update. Every field is
// optional; an absent field leaves the stored value unchanged. Description
// is the only field that admits an explicit null (which clears it), and a
// nil pointer cannot tell null from absent, so the decoder records key
// presence in DescriptionSet.
type TodoUpdate struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	DescriptionSet bool    `json:"-"`
	Priority       *int    `json:"priority"`
}
