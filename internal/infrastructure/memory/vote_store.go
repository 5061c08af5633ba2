package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

type voteSet struct {
	votes     deal.Votes
	expiresAt time.Time
}

// VoteStore keeps ballots in process memory with the same TTL semantics as
// the Redis store. Expired sets are dropped on access and by Sweep.
type VoteStore struct {
	mu   sync.Mutex
	sets map[int64]*voteSet
	ttl  time.Duration
	now  func() time.Time
}

// NewVoteStore creates a store whose sets expire ttl after their latest ballot.
func NewVoteStore(ttl time.Duration) *VoteStore {
	return &VoteStore{
		sets: make(map[int64]*voteSet),
		ttl:  ttl,
		now:  time.Now,
	}
}

// WithClock replaces the time source.
func (s *VoteStore) WithClock(now func() time.Time) *VoteStore {
	s.now = now
	return s
}

func (s *VoteStore) GetVotes(ctx context.Context, dealID int64) (deal.Votes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.live(dealID)
	if set == nil {
		return deal.Votes{}, nil
	}
	return copyVotes(set.votes), nil
}

func (s *VoteStore) CastVote(ctx context.Context, dealID, voterID int64, value bool) (deal.Votes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.live(dealID)
	if set == nil {
		set = &voteSet{votes: deal.Votes{}}
		s.sets[dealID] = set
	}
	if set.votes.Has(voterID) {
		return nil, fmt.Errorf("%w: user already voted", market.ErrConflict)
	}
	set.votes[voterID] = value
	set.expiresAt = s.now().Add(s.ttl)
	return copyVotes(set.votes), nil
}

func (s *VoteStore) ClearVotes(ctx context.Context, dealID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, dealID)
	return nil
}

// Sweep drops expired sets and returns how many were removed.
func (s *VoteStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, set := range s.sets {
		if !now.Before(set.expiresAt) {
			delete(s.sets, id)
			removed++
		}
	}
	return removed
}

func (s *VoteStore) live(dealID int64) *voteSet {
	set, ok := s.sets[dealID]
	if !ok {
		return nil
	}
	if !s.now().Before(set.expiresAt) {
		delete(s.sets, dealID)
		return nil
	}
	return set
}

func copyVotes(v deal.Votes) deal.Votes {
	out := make(deal.Votes, len(v))
	for k, b := range v {
		out[k] = b
	}
	return out
}
