package models

import "time"

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)

// Friendship is a directed edge from requester to addressee. Status moves
// from pending to accepted or rejected exactly once, by the addressee.
type Friendship struct {
	ID          int64     `json:"id"`
	RequesterID int64     `json:"requester_id"`
	AddresseeID int64     `json:"addressee_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PendingRequest is a pending friendship joined with the requester's
// display info.
type PendingRequest struct {
	Friendship
	RequesterUsername    string `json:"requester_username"`
	RequesterDisplayName string `json:"requester_display_name"`
}
