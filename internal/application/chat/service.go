package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

// Summary is a chat with its listing and current deal.
type Summary struct {
	*market.Chat
	Advert *market.Listing `json:"advert"`
	Deal   *deal.View      `json:"deal"`
}

// Service manages chats between listing owners and interested users.
type Service struct {
	marketRepo market.Repository
	dealRepo   deal.Repository
	votes      deal.VoteStore
	logger     zerolog.Logger
}

// NewService creates a chat service.
func NewService(marketRepo market.Repository, dealRepo deal.Repository, votes deal.VoteStore, logger zerolog.Logger) *Service {
	return &Service{
		marketRepo: marketRepo,
		dealRepo:   dealRepo,
		votes:      votes,
		logger:     logger.With().Str("service", "chat").Logger(),
	}
}

// CreateChat opens a chat on listingID for callerID, or returns the one that
// already exists.
func (s *Service) CreateChat(ctx context.Context, callerID, listingID int64) (*market.Chat, error) {
	user, err := s.marketRepo.GetUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no user found", market.ErrUnauthorized)
	}
	if user.Banned {
		return nil, fmt.Errorf("%w: user is banned", market.ErrUnauthorized)
	}

	listing, err := s.marketRepo.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: advert %d", market.ErrNotFound, listingID)
	}
	if listing.Archived {
		return nil, fmt.Errorf("%w: advert is archived", market.ErrUnauthorized)
	}
	if listing.OwnerID == callerID {
		return nil, fmt.Errorf("%w: cannot open a chat on your own advert", market.ErrInvalidInput)
	}

	existing, err := s.marketRepo.FindChat(ctx, listingID, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	c := &market.Chat{ListingID: listingID, ParticipantID: callerID}
	if err := s.marketRepo.CreateChat(ctx, c); err != nil {
		// a concurrent request created it first
		if existing, findErr := s.marketRepo.FindChat(ctx, listingID, callerID); findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	s.logger.Info().Int64("chat_id", c.ID).Int64("advert_id", listingID).Int64("user_id", callerID).Msg("chat created")
	return c, nil
}

// ListChats returns every chat callerID takes part in, newest activity first.
func (s *Service) ListChats(ctx context.Context, callerID int64) ([]*Summary, error) {
	chats, err := s.marketRepo.ListChatsForUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]*Summary, 0, len(chats))
	for _, c := range chats {
		listing, err := s.marketRepo.GetListing(ctx, c.ListingID)
		if err != nil {
			return nil, err
		}
		d, err := s.dealRepo.FindActiveDeal(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		var view *deal.View
		if d != nil {
			votes, err := s.votes.GetVotes(ctx, d.ID)
			if err != nil {
				s.logger.Warn().Err(err).Int64("deal_id", d.ID).Msg("failed to read votes")
			}
			view = deal.NewView(d, votes)
		}
		out = append(out, &Summary{Chat: c, Advert: listing, Deal: view})
	}
	return out, nil
}

// AuthorizeSubscriber checks that callerID may receive the events of chatID.
func (s *Service) AuthorizeSubscriber(ctx context.Context, callerID, chatID int64) error {
	c, err := s.marketRepo.GetChat(ctx, chatID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: chat %d", market.ErrNotFound, chatID)
	}
	listing, err := s.marketRepo.GetListing(ctx, c.ListingID)
	if err != nil {
		return err
	}
	return market.AuthorizeParticipant(c, listing, callerID)
}
