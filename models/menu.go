package models

import "time"

// MenuItem is a dish on the live menu. Orders snapshot name and price at
// creation time, so edits here never rewrite existing orders.
type MenuItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available" bson:"is_available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}
