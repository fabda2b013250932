package entity

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review statuses. Submissions are auto-approved; pending and rejected exist
// in the model for a future moderation workflow but no route sets them.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// SpamWindow is the minimum spacing between two reviews from the same
// normalized email address.
const SpamWindow = time.Hour

// ListLimit caps the public review listing.
const ListLimit = 100

// Review is a customer review. Reviews are immutable once written; no exposed
// operation updates or deletes them.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReviewStats is the live aggregate over approved reviews. It is recomputed
// from the collection on demand and never stored.
type ReviewStats struct {
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	TotalReviews  int64   `bson:"totalReviews" json:"totalReviews"`
}

// RoundRating rounds an average rating to two decimal places.
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}
