package dto

import "time"

// TicketDTO is the application-level view of a ticket.
type TicketDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	Image           string    `json:"image,omitempty"`
	OwnerID         uint      `json:"owner_id"`
	OwnerUsername   string    `json:"owner_username,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
