package model

import "time"

// Submission is one accepted form entry.  It corresponds to a row in
// the `grandeur` table and is written exactly once: submissions are
// never updated or deleted by this service.
type Submission struct {
	ID          uint64    // grandeur.id
	Name        string    // grandeur.name
	Email       string    // grandeur.email
	PhoneNumber string    // grandeur.phone_number
	CreatedAt   time.Time // grandeur.created_at
}
