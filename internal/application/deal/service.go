package deal

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	domainDeal "github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
	"github.com/marketplace/dealchat/internal/domain/notification"
)

// Service runs the per-chat deal state machine.
type Service struct {
	marketRepo  market.Repository
	dealRepo    domainDeal.Repository
	votes       domainDeal.VoteStore
	locker      domainDeal.Locker
	broadcaster notification.Broadcaster
	logger      zerolog.Logger
}

// NewService creates a deal service.
func NewService(
	marketRepo market.Repository,
	dealRepo domainDeal.Repository,
	votes domainDeal.VoteStore,
	locker domainDeal.Locker,
	broadcaster notification.Broadcaster,
	logger zerolog.Logger,
) *Service {
	return &Service{
		marketRepo:  marketRepo,
		dealRepo:    dealRepo,
		votes:       votes,
		locker:      locker,
		broadcaster: broadcaster,
		logger:      logger.With().Str("service", "deal").Logger(),
	}
}

// outcome is what a transition did, consumed after the listing lock is released.
type outcome struct {
	deal     *domainDeal.Deal
	changed  bool
	archived []int64
}

// RequestDeal applies transition t to the deal of chatID on behalf of callerID.
// It returns the resulting deal with its vote count, or nil when the chat has
// no deal afterwards or the transition was a no-op. Only changes are broadcast.
func (s *Service) RequestDeal(ctx context.Context, callerID, chatID int64, price float64, t domainDeal.Transition) (*domainDeal.View, error) {
	user, err := s.marketRepo.GetUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no user found", market.ErrUnauthorized)
	}

	chat, err := s.marketRepo.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, fmt.Errorf("%w: no chat found", market.ErrUnauthorized)
	}

	out, err := s.transition(ctx, callerID, chat.ListingID, chatID, price, t)
	if err != nil {
		s.logger.Debug().Err(err).Int64("chat_id", chatID).Int64("caller_id", callerID).Str("state", string(t)).Msg("deal transition refused")
		return nil, err
	}
	view := s.view(ctx, out.deal)
	if !out.changed {
		s.logger.Debug().Int64("chat_id", chatID).Int64("caller_id", callerID).Str("state", string(t)).Msg("deal transition had no effect")
		return view, nil
	}
	s.publish(ctx, chatID, notification.EventDeal, view)
	for _, id := range out.archived {
		s.publish(ctx, id, notification.EventChatArchived, map[string]int64{"chatId": id})
	}

	ev := s.logger.Info().Int64("chat_id", chatID).Int64("caller_id", callerID).Str("state", string(t))
	if out.deal != nil {
		ev = ev.Int64("deal_id", out.deal.ID).Str("status", string(out.deal.Status))
	}
	ev.Msg("deal transition applied")
	return view, nil
}

// transition runs under the listing lock so that every chat of one listing
// sees a consistent deal set.
func (s *Service) transition(ctx context.Context, callerID, listingID, chatID int64, price float64, t domainDeal.Transition) (outcome, error) {
	unlock, err := s.locker.Lock(ctx, listingKey(listingID))
	if err != nil {
		return outcome{}, fmt.Errorf("lock listing %d: %w", listingID, err)
	}
	defer unlock()

	chat, err := s.marketRepo.GetChat(ctx, chatID)
	if err != nil {
		return outcome{}, err
	}
	var listing *market.Listing
	if chat != nil {
		listing, err = s.marketRepo.GetListing(ctx, chat.ListingID)
		if err != nil {
			return outcome{}, err
		}
	}
	if err := market.AuthorizeParticipant(chat, listing, callerID); err != nil {
		return outcome{}, err
	}

	current, err := s.dealRepo.FindActiveDeal(ctx, chatID)
	if err != nil {
		return outcome{}, err
	}

	switch t {
	case domainDeal.TransitionStart:
		return s.start(ctx, current, chat, listing, callerID, price)
	case domainDeal.TransitionStop:
		return s.stop(ctx, current, listing)
	case domainDeal.TransitionAccept:
		return s.accept(ctx, current, chat, listing, callerID)
	case domainDeal.TransitionDecline:
		return s.decline(ctx, current, callerID)
	case domainDeal.TransitionComplete:
		return s.complete(ctx, current, chat, listing, callerID)
	default:
		return outcome{}, fmt.Errorf("%w: invalid deal state %q", market.ErrInvalidInput, t)
	}
}

func (s *Service) start(ctx context.Context, current *domainDeal.Deal, chat *market.Chat, listing *market.Listing, callerID int64, price float64) (outcome, error) {
	if current != nil {
		return outcome{}, fmt.Errorf("%w: deal already active", market.ErrUnauthorized)
	}
	if chat.Archived {
		return outcome{}, fmt.Errorf("%w: chat archived", market.ErrUnauthorized)
	}
	if err := market.AuthorizeSendable(listing); err != nil {
		return outcome{}, err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return outcome{}, fmt.Errorf("%w: price must be a finite number", market.ErrInvalidInput)
	}
	if price < 0 {
		return outcome{}, fmt.Errorf("%w: price must not be negative", market.ErrInvalidInput)
	}
	created, err := s.dealRepo.CreateDeal(ctx, chat.ID, price, callerID)
	if err != nil {
		return outcome{}, err
	}
	return outcome{deal: created, changed: true}, nil
}

func (s *Service) stop(ctx context.Context, current *domainDeal.Deal, listing *market.Listing) (outcome, error) {
	if current == nil {
		return outcome{}, fmt.Errorf("%w: no deal to stop", market.ErrUnauthorized)
	}
	if current.IsCompleted() {
		return outcome{}, fmt.Errorf("%w: deal already completed", market.ErrUnauthorized)
	}
	if err := s.dealRepo.DeleteDeal(ctx, current.ID); err != nil {
		return outcome{}, err
	}
	if err := s.marketRepo.SetListingAvailable(ctx, listing.ID, true); err != nil {
		return outcome{}, err
	}
	s.clearVotes(ctx, current.ID)
	return outcome{changed: true}, nil
}

// decline only removes a deal the caller opened. Anyone else gets a silent no-op.
func (s *Service) decline(ctx context.Context, current *domainDeal.Deal, callerID int64) (outcome, error) {
	if current == nil {
		return outcome{}, fmt.Errorf("%w: no deal found", market.ErrUnauthorized)
	}
	if current.IsCompleted() {
		return outcome{}, fmt.Errorf("%w: deal already completed", market.ErrUnauthorized)
	}
	if !current.RequestedBy(callerID) {
		return outcome{}, nil
	}
	if err := s.dealRepo.DeleteDeal(ctx, current.ID); err != nil {
		return outcome{}, err
	}
	s.clearVotes(ctx, current.ID)
	return outcome{changed: true}, nil
}

// accept is for the counterparty. It cancels every other negotiation on the
// listing. The requester accepting their own deal is a silent no-op.
func (s *Service) accept(ctx context.Context, current *domainDeal.Deal, chat *market.Chat, listing *market.Listing, callerID int64) (outcome, error) {
	if current == nil {
		return outcome{}, fmt.Errorf("%w: no deal found", market.ErrUnauthorized)
	}
	if current.IsCompleted() {
		return outcome{}, fmt.Errorf("%w: deal already completed", market.ErrUnauthorized)
	}
	if current.RequestedBy(callerID) {
		return outcome{}, nil
	}

	accepted, err := s.dealRepo.SetStatus(ctx, current.ID, domainDeal.StatusAccepted)
	if err != nil {
		return outcome{}, err
	}
	archived, removed, err := s.dealRepo.ArchiveCompetingChats(ctx, listing.ID, chat.ID)
	if err != nil {
		return outcome{}, fmt.Errorf("archive competing chats of listing %d: %w", listing.ID, err)
	}
	for _, id := range removed {
		s.clearVotes(ctx, id)
	}
	if err := s.marketRepo.SetListingAvailable(ctx, listing.ID, false); err != nil {
		return outcome{}, err
	}
	return outcome{deal: accepted, changed: true, archived: archived}, nil
}

// complete records the caller's ballot. The cast that brings the set to quorum
// applies the sale. A later call finishes a sale whose ballots reached quorum
// but whose writes did not all land.
func (s *Service) complete(ctx context.Context, current *domainDeal.Deal, chat *market.Chat, listing *market.Listing, callerID int64) (outcome, error) {
	if current == nil {
		return outcome{}, fmt.Errorf("%w: no deal found", market.ErrUnauthorized)
	}
	if current.IsCompleted() {
		return s.finishSale(ctx, current, chat, listing)
	}

	votes, err := s.votes.GetVotes(ctx, current.ID)
	if err != nil {
		return outcome{}, err
	}
	if votes.Complete() {
		return s.finishSale(ctx, current, chat, listing)
	}
	if votes.Has(callerID) {
		return outcome{}, fmt.Errorf("%w: user already voted", market.ErrUnauthorized)
	}

	after, err := s.votes.CastVote(ctx, current.ID, callerID, true)
	if err != nil {
		return outcome{}, err
	}
	if !after.Complete() {
		return outcome{deal: current, changed: true}, nil
	}
	return s.finishSale(ctx, current, chat, listing)
}

// finishSale applies whichever completion writes are still missing. It is a
// no-op on a fully completed sale.
func (s *Service) finishSale(ctx context.Context, d *domainDeal.Deal, chat *market.Chat, listing *market.Listing) (outcome, error) {
	out := outcome{deal: d}
	if !d.IsCompleted() {
		completed, err := s.dealRepo.SetStatus(ctx, d.ID, domainDeal.StatusCompleted)
		if err != nil {
			return outcome{}, err
		}
		out.deal = completed
		out.changed = true
	}
	if listing.SoldTo == nil || *listing.SoldTo != chat.ParticipantID {
		if err := s.marketRepo.MarkListingSold(ctx, listing.ID, chat.ParticipantID); err != nil {
			return outcome{}, err
		}
		out.changed = true
	}
	if !chat.Archived {
		if err := s.marketRepo.ArchiveChat(ctx, chat.ID); err != nil {
			return outcome{}, err
		}
		out.changed = true
		out.archived = []int64{chat.ID}
	}
	return out, nil
}

// GetVotes returns the ballots of dealID to one of its chat's participants.
func (s *Service) GetVotes(ctx context.Context, callerID, dealID int64) (domainDeal.Votes, error) {
	d, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: deal %d", market.ErrNotFound, dealID)
	}
	if err := s.authorize(ctx, callerID, d.ChatID); err != nil {
		return nil, err
	}
	return s.votes.GetVotes(ctx, dealID)
}

// GetChatDeal returns the current deal of chatID, or nil.
func (s *Service) GetChatDeal(ctx context.Context, callerID, chatID int64) (*domainDeal.View, error) {
	if err := s.authorize(ctx, callerID, chatID); err != nil {
		return nil, err
	}
	d, err := s.dealRepo.FindActiveDeal(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, d), nil
}

func (s *Service) authorize(ctx context.Context, callerID, chatID int64) error {
	chat, err := s.marketRepo.GetChat(ctx, chatID)
	if err != nil {
		return err
	}
	if chat == nil {
		return fmt.Errorf("%w: chat %d", market.ErrNotFound, chatID)
	}
	listing, err := s.marketRepo.GetListing(ctx, chat.ListingID)
	if err != nil {
		return err
	}
	return market.AuthorizeParticipant(chat, listing, callerID)
}

// view attaches the vote count. A failing vote store degrades to a zero count.
func (s *Service) view(ctx context.Context, d *domainDeal.Deal) *domainDeal.View {
	if d == nil {
		return nil
	}
	votes, err := s.votes.GetVotes(ctx, d.ID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("deal_id", d.ID).Msg("failed to read votes")
	}
	return domainDeal.NewView(d, votes)
}

func (s *Service) clearVotes(ctx context.Context, dealID int64) {
	if err := s.votes.ClearVotes(ctx, dealID); err != nil {
		s.logger.Warn().Err(err).Int64("deal_id", dealID).Msg("failed to clear votes")
	}
}

func (s *Service) publish(ctx context.Context, chatID int64, event string, payload interface{}) {
	if s.broadcaster == nil {
		return
	}
	if err := s.broadcaster.Publish(ctx, chatID, event, payload); err != nil {
		s.logger.Warn().Err(err).Int64("chat_id", chatID).Str("event", event).Msg("broadcast failed")
	}
}

func listingKey(listingID int64) string {
	return fmt.Sprintf("listing:%d", listingID)
}
