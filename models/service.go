package models

import "time"

// Service kinds. Main services occupy calendar time; extras are
// quantity-multiplied add-ons with no standalone slot.
const (
	ServiceKindMain  = "main"
	ServiceKindExtra = "extra"
)

// Service is a bookable offering from the catalogue.
type Service struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Duration  int       `bson:"duration" json:"duration"`
	Category  string    `bson:"category" json:"category"`
	Kind      string    `bson:"kind" json:"kind"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
