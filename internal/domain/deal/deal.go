package deal

import (
	"fmt"
	"strings"
	"time"

	"github.com/marketplace/dealchat/internal/domain/market"
)

// Status represents the negotiation status of a deal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
)

// Transition is a requested change of the chat's deal.
type Transition string

const (
	TransitionStart    Transition = "start"
	TransitionStop     Transition = "stop"
	TransitionAccept   Transition = "accept"
	TransitionDecline  Transition = "decline"
	TransitionComplete Transition = "complete"
)

// ParseTransition validates a transition name.
func ParseTransition(s string) (Transition, error) {
	t := Transition(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TransitionStart, TransitionStop, TransitionAccept, TransitionDecline, TransitionComplete:
		return t, nil
	}
	return "", fmt.Errorf("%w: invalid deal state %q", market.ErrInvalidInput, s)
}

// Deal is a negotiation scoped to exactly one chat.
type Deal struct {
	ID          int64     `json:"id"`
	ChatID      int64     `json:"chat_id"`
	Price       float64   `json:"price"`
	RequesterID int64     `json:"requester_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RequestedBy reports whether userID opened the deal.
func (d *Deal) RequestedBy(userID int64) bool {
	return d.RequesterID == userID
}

// IsCompleted reports whether both sides confirmed the deal.
func (d *Deal) IsCompleted() bool {
	return d.Status == StatusCompleted
}

// View is a deal as returned to clients, with the current ballot count.
type View struct {
	*Deal
	VoteCount int `json:"voteCount"`
}

// NewView wraps d with the size of its vote set. A nil deal yields a nil view.
func NewView(d *Deal, votes Votes) *View {
	if d == nil {
		return nil
	}
	return &View{Deal: d, VoteCount: len(votes)}
}
