package redisstore

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

var (
	_ deal.VoteStore = (*VoteStore)(nil)
	_ deal.Locker    = (*Locker)(nil)
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = NewClient(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestVoteStore_GetVotesEmpty(t *testing.T) {
	_, rdb := newRedis(t)
	s := NewVoteStore(rdb, deal.VoteTTL)

	votes, err := s.GetVotes(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, votes)
	assert.Empty(t, votes)
}

func TestVoteStore_CastVote(t *testing.T) {
	mr, rdb := newRedis(t)
	s := NewVoteStore(rdb, deal.VoteTTL)
	ctx := context.Background()

	votes, err := s.CastVote(ctx, 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, deal.Votes{10: true}, votes)

	votes, err = s.CastVote(ctx, 1, 20, false)
	require.NoError(t, err)
	assert.Equal(t, deal.Votes{10: true, 20: false}, votes)

	assert.Equal(t, time.Hour, mr.TTL("deal_votes:1"))

	stored, err := s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, votes, stored)
}

func TestVoteStore_SecondBallotConflicts(t *testing.T) {
	_, rdb := newRedis(t)
	s := NewVoteStore(rdb, deal.VoteTTL)
	ctx := context.Background()

	_, err := s.CastVote(ctx, 1, 10, false)
	require.NoError(t, err)

	_, err = s.CastVote(ctx, 1, 10, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrConflict)

	votes, err := s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, deal.Votes{10: false}, votes)
}

func TestVoteStore_ExpiryMeasuredFromLatestWrite(t *testing.T) {
	mr, rdb := newRedis(t)
	s := NewVoteStore(rdb, deal.VoteTTL)
	ctx := context.Background()

	_, err := s.CastVote(ctx, 1, 10, true)
	require.NoError(t, err)
	mr.FastForward(45 * time.Minute)

	_, err = s.CastVote(ctx, 1, 20, true)
	require.NoError(t, err)
	mr.FastForward(45 * time.Minute)

	votes, err := s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, votes, 2)

	mr.FastForward(16 * time.Minute)
	votes, err = s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestVoteStore_ConcurrentCastsReachQuorumOnce(t *testing.T) {
	_, rdb := newRedis(t)
	s := NewVoteStore(rdb, deal.VoteTTL)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		quorums  int
		failures int
	)
	for _, voter := range []int64{1, 2, 1, 2, 1, 2} {
		wg.Add(1)
		go func(voter int64) {
			defer wg.Done()
			votes, err := s.CastVote(ctx, 9, voter, true)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				return
			}
			if votes.Complete() {
				quorums++
			}
		}(voter)
	}
	wg.Wait()

	assert.Equal(t, 1, quorums)
	assert.Equal(t, 4, failures)
}

func TestVoteStore_ClearVotes(t *testing.T) {
	_, rdb := newRedis(t)
	s := NewVoteStore(rdb, deal.VoteTTL)
	ctx := context.Background()
	_, err := s.CastVote(ctx, 1, 10, true)
	require.NoError(t, err)

	require.NoError(t, s.ClearVotes(ctx, 1))

	votes, err := s.GetVotes(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestLocker(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewLocker(rdb, 5*time.Second)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "listing:1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:listing:1"))

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = l.Lock(waitCtx, "listing:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.False(t, mr.Exists("lock:listing:1"))

	unlock2, err := l.Lock(ctx, "listing:1")
	require.NoError(t, err)
	unlock2()
}

func TestLocker_ReleaseKeepsForeignToken(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewLocker(rdb, time.Second)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	// Lock expired and was taken by another holder.
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set("lock:k", "someone-else"))

	unlock()
	got, err := mr.Get("lock:k")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestStreamPublisher(t *testing.T) {
	_, rdb := newRedis(t)
	p := NewStreamPublisher(rdb, "marketplace.deal-events")
	ctx := context.Background()

	err := p.Publish(ctx, 3, "deal", map[string]interface{}{"id": 1, "status": "pending"})
	require.NoError(t, err)

	msgs, err := rdb.XRange(ctx, "marketplace.deal-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "3", msgs[0].Values["chat_id"])
	assert.Equal(t, "deal", msgs[0].Values["event"])

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["payload"].(string)), &payload))
	assert.Equal(t, "pending", payload["status"])
}
