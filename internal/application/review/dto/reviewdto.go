package dto

import "time"

// ReviewDTO is the application-level view of a review.
type ReviewDTO struct {
	ID            uint      `json:"id"`
	TicketID      uint      `json:"ticket_id"`
	Rating        int       `json:"rating"`
	Headline      string    `json:"headline"`
	Body          string    `json:"body,omitempty"`
	BodyHTML      string    `json:"body_html,omitempty"`
	OwnerID       uint      `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReviewRequestDTO describes a pending review request.
type ReviewRequestDTO struct {
	ID              uint      `json:"id"`
	TicketID        uint      `json:"ticket_id"`
	RequesterID     uint      `json:"requester_id"`
	RequestedUserID uint      `json:"requested_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}
