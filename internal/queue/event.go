// Package queue defines message payloads exchanged over the message broker
// and the publisher that emits them.
package queue

import (
	"time"

	"github.com/grandeurhq/form-service/internal/model"
)

// FormSubmittedEvent is published after a submission row has been
// committed.  It carries enough information for downstream consumers to
// notify, sync a CRM, or feed analytics without querying the primary
// database.
type FormSubmittedEvent struct {
	RecordID    uint64 `json:"record_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	SubmittedAt string `json:"submitted_at"`
}

// NewFormSubmittedEvent builds the event for a stored submission.
func NewFormSubmittedEvent(sub model.Submission) FormSubmittedEvent {
	return FormSubmittedEvent{
		RecordID:    sub.ID,
		Name:        sub.Name,
		Email:       sub.Email,
		PhoneNumber: sub.PhoneNumber,
		SubmittedAt: sub.CreatedAt.UTC().Format(time.RFC3339),
	}
}
