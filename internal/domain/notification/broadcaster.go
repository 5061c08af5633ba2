package notification

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_broadcaster.go -package=mocks . Broadcaster

import "context"

// Broadcaster notifies the subscribers of a chat. Delivery is fire-and-forget:
// callers log a returned error and carry on.
type Broadcaster interface {
	Publish(ctx context.Context, chatID int64, event string, payload interface{}) error
}

// SSEHub defines the interface for managing SSE connections
type SSEHub interface {
	Register(client *SSEClient)
	Unregister(clientID string)
	GetClientCount() int
	BroadcastToGroup(group string, message *SSEMessage)
	Stop()
}
