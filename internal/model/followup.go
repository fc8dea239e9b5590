package model

import "time"

// Due tells how follow-up date relates to today
type Due string

const (
	// DueOverdue is set when follow-up date is in the past
	DueOverdue Due = "Overdue"
	// DueToday is set when follow-up date is today
	DueToday Due = "Due Today"
	// DueUpcoming is set when follow-up date is in the future
	DueUpcoming Due = "Upcoming"
)

// ClassifyDue compares ISO dates as strings, both must be in YYYY-MM-DD form
func ClassifyDue(date string, today string) Due {
	switch {
	case date < today:
		return DueOverdue
	case date == today:
		return DueToday
	default:
		return DueUpcoming
	}
}

// Followup is scheduled action tied to customer, open until completed
type Followup struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	CustomerID   string    `json:"customerId" bson:"customerId"`
	FollowupDate string    `json:"followupDate" bson:"followupDate"`
	Action       string    `json:"action" bson:"action"`
	Completed    bool      `json:"completed" bson:"completed"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// CustomerFollowup is follow-up joined with the name of its customer
type CustomerFollowup struct {
	Followup
	CustomerName string `json:"customerName"`
	Due          Due    `json:"due,omitempty"`
}
