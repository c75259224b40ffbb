package dto

import "github.com/google/uuid"

// TicketEmailMessage is the watermill payload queued after a payment
// completes, consumed by the ticket-email worker.
type TicketEmailMessage struct {
	RegistrationId uuid.UUID `json:"registration_id"`
}
