package market

import "time"

// User is the subset of the user row the chat service reads.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	Banned bool   `json:"banned"`
}

// Listing is a sellable advert.
type Listing struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"user_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	OldPrice  float64   `json:"old_price"`
	Available bool      `json:"available"`
	Archived  bool      `json:"archived"`
	SoldTo    *int64    `json:"sold_to,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Chat is a conversation between a listing owner and one participant.
type Chat struct {
	ID            int64     `json:"id"`
	ListingID     int64     `json:"advert_id"`
	ParticipantID int64     `json:"participant_id"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsMember reports whether userID is one of the two sides of the chat.
func IsMember(c *Chat, l *Listing, userID int64) bool {
	return c.ParticipantID == userID || l.OwnerID == userID
}
