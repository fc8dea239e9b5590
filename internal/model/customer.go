package model

import "time"

// Status is customer sales-pipeline stage
type Status string

const (
	// StatusNew is the initial stage of every customer
	StatusNew Status = "New"
	// StatusContacted means customer was reached at least once
	StatusContacted Status = "Contacted"
	// StatusInterested means customer showed interest
	StatusInterested Status = "Interested"
	// StatusClosed means deal is closed
	StatusClosed Status = "Closed"
)

// Statuses lists all customer statuses in pipeline order
var Statuses = []Status{StatusNew, StatusContacted, StatusInterested, StatusClosed}

// Valid reports whether status is one of the known statuses
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Customer is customer model entity
type Customer struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
