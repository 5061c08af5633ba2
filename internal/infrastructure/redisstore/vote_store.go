package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

const votesPrefix = "deal_votes:"

// castScript inserts one ballot only if the voter has none, refreshes the
// expiry of the whole set and returns it. A nil reply means the voter
// already voted.
var castScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 0 then
	return false
end
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return redis.call('HGETALL', KEYS[1])
`)

// VoteStore keeps each deal's ballots in a Redis hash keyed by deal id.
type VoteStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewVoteStore(rdb redis.UniversalClient, ttl time.Duration) *VoteStore {
	if ttl <= 0 {
		ttl = deal.VoteTTL
	}
	return &VoteStore{rdb: rdb, ttl: ttl}
}

func (s *VoteStore) GetVotes(ctx context.Context, dealID int64) (deal.Votes, error) {
	raw, err := s.rdb.HGetAll(ctx, votesKey(dealID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get votes for deal %d: %w", dealID, err)
	}
	votes := make(deal.Votes, len(raw))
	for k, v := range raw {
		voter, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		votes[voter] = v == "1"
	}
	return votes, nil
}

func (s *VoteStore) CastVote(ctx context.Context, dealID, voterID int64, value bool) (deal.Votes, error) {
	ballot := "0"
	if value {
		ballot = "1"
	}
	res, err := castScript.Run(ctx, s.rdb, []string{votesKey(dealID)},
		strconv.FormatInt(voterID, 10), ballot, s.ttl.Milliseconds()).Slice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: user already voted", market.ErrConflict)
		}
		return nil, fmt.Errorf("cast vote for deal %d: %w", dealID, err)
	}
	return parseFlatHash(res), nil
}

func (s *VoteStore) ClearVotes(ctx context.Context, dealID int64) error {
	return s.rdb.Del(ctx, votesKey(dealID)).Err()
}

func votesKey(dealID int64) string {
	return votesPrefix + strconv.FormatInt(dealID, 10)
}

func parseFlatHash(res []interface{}) deal.Votes {
	votes := make(deal.Votes, len(res)/2)
	for i := 0; i+1 < len(res); i += 2 {
		k, _ := res[i].(string)
		v, _ := res[i+1].(string)
		voter, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		votes[voter] = v == "1"
	}
	return votes
}
