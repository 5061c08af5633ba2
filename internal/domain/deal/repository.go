package deal

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository,VoteStore,Locker

import "context"

// Repository persists deal rows. At most one deal exists per chat.
type Repository interface {
	// FindActiveDeal returns the chat's deal, or nil when there is none.
	FindActiveDeal(ctx context.Context, chatID int64) (*Deal, error)
	GetByID(ctx context.Context, dealID int64) (*Deal, error)
	// CreateDeal inserts a pending deal. It fails with market.ErrConflict when
	// the chat already has one.
	CreateDeal(ctx context.Context, chatID int64, price float64, requesterID int64) (*Deal, error)
	SetStatus(ctx context.Context, dealID int64, status Status) (*Deal, error)
	DeleteDeal(ctx context.Context, dealID int64) error
	// ArchiveCompetingChats deletes the deals of every other chat on the listing
	// and archives those chats. It returns the ids of the chats it newly archived
	// and of the deals it removed.
	ArchiveCompetingChats(ctx context.Context, listingID, excludeChatID int64) (chatIDs, dealIDs []int64, err error)
}

// VoteStore tracks ballots outside the relational store. Sets expire VoteTTL
// after their latest write; a missing or expired set reads as empty.
type VoteStore interface {
	GetVotes(ctx context.Context, dealID int64) (Votes, error)
	// CastVote records one ballot and returns the resulting set. Insert and
	// read back are atomic with respect to other casts on the same deal.
	// A second ballot from the same voter fails with market.ErrConflict.
	CastVote(ctx context.Context, dealID, voterID int64, value bool) (Votes, error)
	ClearVotes(ctx context.Context, dealID int64) error
}

// Locker provides mutual exclusion keyed by name.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
