package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestVoteStore_EmptyForUnknownDeal(t *testing.T) {
	s := NewVoteStore(deal.VoteTTL)

	votes, err := s.GetVotes(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, votes)
	assert.Empty(t, votes)
}

func TestVoteStore_SecondBallotConflicts(t *testing.T) {
	for _, first := range []bool{true, false} {
		s := NewVoteStore(deal.VoteTTL)
		ctx := context.Background()

		_, err := s.CastVote(ctx, 1, 10, first)
		require.NoError(t, err)

		_, err = s.CastVote(ctx, 1, 10, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, market.ErrConflict)

		votes, err := s.GetVotes(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, deal.Votes{10: first}, votes)
	}
}

func TestVoteStore_CastReturnsResultingSet(t *testing.T) {
	s := NewVoteStore(deal.VoteTTL)
	ctx := context.Background()

	votes, err := s.CastVote(ctx, 1, 10, true)
	require.NoError(t, err)
	assert.Len(t, votes, 1)

	votes, err = s.CastVote(ctx, 1, 20, true)
	require.NoError(t, err)
	assert.True(t, votes.Complete())
}

func TestVoteStore_TTLResetsOnEveryWrite(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewVoteStore(time.Hour).WithClock(clock.Now)
	ctx := context.Background()

	_, err := s.CastVote(ctx, 1, 10, true)
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	_, err = s.CastVote(ctx, 1, 20, true)
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	votes, err := s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, votes, 2, "second ballot extended the expiry")

	clock.Advance(11 * time.Minute)
	votes, err = s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestVoteStore_Sweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewVoteStore(time.Hour).WithClock(clock.Now)
	ctx := context.Background()

	_, _ = s.CastVote(ctx, 1, 10, true)
	clock.Advance(30 * time.Minute)
	_, _ = s.CastVote(ctx, 2, 10, true)
	clock.Advance(31 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	votes, _ := s.GetVotes(ctx, 2)
	assert.Len(t, votes, 1)
}

func TestVoteStore_Clear(t *testing.T) {
	s := NewVoteStore(deal.VoteTTL)
	ctx := context.Background()
	_, _ = s.CastVote(ctx, 1, 10, true)

	require.NoError(t, s.ClearVotes(ctx, 1))

	votes, _ := s.GetVotes(ctx, 1)
	assert.Empty(t, votes)
}
