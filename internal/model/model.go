package model

import "time"

// Item is a record kept by the collaborator backend behind /api/items.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewItem is the body accepted by POST /api/items.
type NewItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
