package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project categories used by the portfolio filter.
const (
	CategoryFirst    = "first"
	CategorySecond   = "second"
	CategoryThird    = "third"
	CategoryOngoing  = "ongoing"
	CategoryComplete = "complete"
)

const (
	ProjectStatusActive   = "active"
	ProjectStatusInactive = "inactive"
)

// Project is a portfolio entry. Only admins create projects; the public list
// exposes active ones, newest first.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	UploadedBy  string             `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
