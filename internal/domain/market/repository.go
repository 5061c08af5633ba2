package market

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import "context"

// Repository persists users, listings and chats.
// Getters return nil, nil when the row does not exist.
type Repository interface {
	GetUser(ctx context.Context, userID int64) (*User, error)

	GetListing(ctx context.Context, listingID int64) (*Listing, error)
	SetListingAvailable(ctx context.Context, listingID int64, available bool) error
	MarkListingSold(ctx context.Context, listingID, buyerID int64) error

	GetChat(ctx context.Context, chatID int64) (*Chat, error)
	FindChat(ctx context.Context, listingID, participantID int64) (*Chat, error)
	CreateChat(ctx context.Context, chat *Chat) error
	ListChatsForUser(ctx context.Context, userID int64) ([]*Chat, error)
	ArchiveChat(ctx context.Context, chatID int64) error
}
