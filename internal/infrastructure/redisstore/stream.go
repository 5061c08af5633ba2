package redisstore

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// StreamPublisher mirrors chat events to a Redis stream so other services
// (and other instances of this one) can follow deal changes.
type StreamPublisher struct {
	rdb    redis.UniversalClient
	stream string
	maxLen int64
}

func NewStreamPublisher(rdb redis.UniversalClient, stream string) *StreamPublisher {
	return &StreamPublisher{rdb: rdb, stream: stream, maxLen: 10000}
}

func (p *StreamPublisher) Publish(ctx context.Context, chatID int64, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"chat_id": strconv.FormatInt(chatID, 10),
			"event":   event,
			"payload": string(data),
		},
	}).Err()
}
