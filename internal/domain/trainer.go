package domain

import (
	"time"
)

// Trainer is the profile of a user whose calendar gets booked.
type Trainer struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"` // Owning account
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Specialty       string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Certification   string    `bson:"certification,omitempty" json:"certification,omitempty"`
	ExperienceYears int       `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"` // Years of experience
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
