package model

import "time"

// InteractionType is the kind of contact made with customer
type InteractionType string

const (
	// InteractionNote is a plain note
	InteractionNote InteractionType = "Note"
	// InteractionCall is a phone call
	InteractionCall InteractionType = "Call"
	// InteractionEmail is an email
	InteractionEmail InteractionType = "Email"
	// InteractionMeeting is a meeting
	InteractionMeeting InteractionType = "Meeting"
)

// InteractionTypes lists all interaction types, default one goes first
var InteractionTypes = []InteractionType{InteractionNote, InteractionCall, InteractionEmail, InteractionMeeting}

// Valid reports whether interaction type is one of the known types
func (t InteractionType) Valid() bool {
	for _, it := range InteractionTypes {
		if t == it {
			return true
		}
	}
	return false
}

// Interaction is immutable record of contact with customer
type Interaction struct {
	ID         string          `json:"id" bson:"_id,omitempty"`
	CustomerID string          `json:"customerId" bson:"customerId"`
	Type       InteractionType `json:"type" bson:"type"`
	Notes      string          `json:"notes" bson:"notes"`
	Date       string          `json:"date" bson:"date"`
	CreatedAt  time.Time       `json:"createdAt" bson:"createdAt"`
}
