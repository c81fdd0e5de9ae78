package domain

import (
	"time"
)

// Client is the profile of a user who books training sessions.
// Bookings reference clients by ID only.
type Client struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"` // Owning account
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	FitnessGoals string    `bson:"fitnessGoals,omitempty" json:"fitnessGoals,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
