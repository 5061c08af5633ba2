package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

// Store is an in-memory implementation of market.Repository and
// deal.Repository for local runs and tests. Returned values are copies.
type Store struct {
	mu       sync.RWMutex
	users    map[int64]*market.User
	listings map[int64]*market.Listing
	chats    map[int64]*market.Chat
	deals    map[int64]*deal.Deal
	nextChat int64
	nextDeal int64
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*market.User),
		listings: make(map[int64]*market.Listing),
		chats:    make(map[int64]*market.Chat),
		deals:    make(map[int64]*deal.Deal),
	}
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u market.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = &u
}

// PutListing inserts or replaces a listing.
func (s *Store) PutListing(l market.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
		l.UpdatedAt = l.CreatedAt
	}
	s.listings[l.ID] = &l
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*market.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetListing(ctx context.Context, listingID int64) (*market.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[listingID]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *Store) SetListingAvailable(ctx context.Context, listingID int64, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.listings[listingID]; ok {
		l.Available = available
		l.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *Store) MarkListingSold(ctx context.Context, listingID, buyerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.listings[listingID]; ok {
		l.Available = false
		l.SoldTo = &buyerID
		l.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *Store) GetChat(ctx context.Context, chatID int64) (*market.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *Store) FindChat(ctx context.Context, listingID, participantID int64) (*market.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.chats {
		if c.ListingID == listingID && c.ParticipantID == participantID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateChat(ctx context.Context, chat *market.Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.chats {
		if c.ListingID == chat.ListingID && c.ParticipantID == chat.ParticipantID {
			return fmt.Errorf("%w: chat already exists", market.ErrConflict)
		}
	}
	s.nextChat++
	now := time.Now().UTC()
	chat.ID = s.nextChat
	chat.CreatedAt = now
	chat.UpdatedAt = now
	cp := *chat
	s.chats[cp.ID] = &cp
	return nil
}

func (s *Store) ListChatsForUser(ctx context.Context, userID int64) ([]*market.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*market.Chat
	for _, c := range s.chats {
		l := s.listings[c.ListingID]
		if c.ParticipantID == userID || (l != nil && l.OwnerID == userID) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ArchiveChat(ctx context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.chats[chatID]; ok {
		c.Archived = true
		c.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *Store) FindActiveDeal(ctx context.Context, chatID int64) (*deal.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.deals {
		if d.ChatID == chatID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) GetByID(ctx context.Context, dealID int64) (*deal.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deals[dealID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (s *Store) CreateDeal(ctx context.Context, chatID int64, price float64, requesterID int64) (*deal.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deals {
		if d.ChatID == chatID {
			return nil, fmt.Errorf("%w: deal already exists for chat %d", market.ErrConflict, chatID)
		}
	}
	s.nextDeal++
	d := &deal.Deal{
		ID:          s.nextDeal,
		ChatID:      chatID,
		Price:       price,
		RequesterID: requesterID,
		Status:      deal.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.deals[d.ID] = d
	cp := *d
	return &cp, nil
}

func (s *Store) SetStatus(ctx context.Context, dealID int64, status deal.Status) (*deal.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[dealID]
	if !ok {
		return nil, nil
	}
	d.Status = status
	cp := *d
	return &cp, nil
}

func (s *Store) DeleteDeal(ctx context.Context, dealID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deals, dealID)
	return nil
}

func (s *Store) ArchiveCompetingChats(ctx context.Context, listingID, excludeChatID int64) ([]int64, []int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	var archived, removed []int64
	for _, c := range s.chats {
		if c.ListingID != listingID || c.ID == excludeChatID {
			continue
		}
		for id, d := range s.deals {
			if d.ChatID == c.ID {
				delete(s.deals, id)
				removed = append(removed, id)
			}
		}
		if c.Archived {
			continue
		}
		c.Archived = true
		c.UpdatedAt = now
		archived = append(archived, c.ID)
	}
	sort.Slice(archived, func(i, j int) bool { return archived[i] < archived[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return archived, removed, nil
}
