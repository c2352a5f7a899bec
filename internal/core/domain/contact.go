package domain

import "time"

// Contact is an immutable contact-form submission.
type Contact struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"firstName" bson:"first_name"`
	LastName  string    `json:"lastName" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type NewContact struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

func (in NewContact) Build(id string, now time.Time) Contact {
	return Contact{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: now,
	}
}
