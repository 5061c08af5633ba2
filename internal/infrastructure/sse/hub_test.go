package sse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marketplace/dealchat/internal/domain/notification"
	"github.com/marketplace/dealchat/internal/domain/notification/mocks"
)

var (
	_ notification.SSEHub      = (*Hub)(nil)
	_ notification.Broadcaster = (*Hub)(nil)
	_ notification.Broadcaster = Fanout{}
)

func TestHub_PublishReachesChatGroupOnly(t *testing.T) {
	hub := NewHub()
	member := notification.NewSSEClient("a", nil, []string{notification.ChatGroup(1)})
	other := notification.NewSSEClient("b", nil, []string{notification.ChatGroup(2)})
	hub.Register(member)
	hub.Register(other)
	defer hub.Stop()

	err := hub.Publish(context.Background(), 1, notification.EventDeal, map[string]int{"id": 9})
	require.NoError(t, err)

	select {
	case msg := <-member.MessageChan:
		assert.Equal(t, notification.EventDeal, msg.Event)
		assert.JSONEq(t, `{"id":9}`, string(msg.Data))
	default:
		t.Fatal("member did not receive the event")
	}
	assert.Len(t, other.MessageChan, 0)
}

func TestHub_PublishNilPayload(t *testing.T) {
	hub := NewHub()
	c := notification.NewSSEClient("a", nil, []string{notification.ChatGroup(3)})
	hub.Register(c)
	defer hub.Stop()

	require.NoError(t, hub.Publish(context.Background(), 3, notification.EventDeal, nil))
	msg := <-c.MessageChan
	assert.Equal(t, "null", string(msg.Data))
}

func TestHub_FullBufferDropsMessage(t *testing.T) {
	hub := NewHub()
	c := notification.NewSSEClient("a", nil, []string{"g"})
	hub.Register(c)
	defer hub.Stop()

	for i := 0; i < cap(c.MessageChan)+5; i++ {
		hub.BroadcastToGroup("g", notification.NewSSEMessage("x", []byte(`1`)))
	}
	assert.Len(t, c.MessageChan, cap(c.MessageChan))
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	c := notification.NewSSEClient("a", nil, nil)
	hub.Register(c)
	assert.Equal(t, 1, hub.GetClientCount())

	hub.Unregister("a")
	assert.Equal(t, 0, hub.GetClientCount())
	_, ok := <-c.MessageChan
	assert.False(t, ok)

	hub.Unregister("missing")
}

func TestFanout_JoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockBroadcaster(ctrl)
	second := mocks.NewMockBroadcaster(ctrl)
	boom := errors.New("stream down")

	first.EXPECT().Publish(gomock.Any(), int64(4), notification.EventChatArchived, nil).Return(nil)
	second.EXPECT().Publish(gomock.Any(), int64(4), notification.EventChatArchived, nil).Return(boom)

	err := Fanout{first, second}.Publish(context.Background(), 4, notification.EventChatArchived, nil)
	assert.ErrorIs(t, err, boom)
}
