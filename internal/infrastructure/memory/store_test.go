package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

var (
	_ market.Repository = (*Store)(nil)
	_ deal.Repository   = (*Store)(nil)
	_ deal.VoteStore    = (*VoteStore)(nil)
)

func TestStore_OneDealPerChat(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	d, err := s.CreateDeal(ctx, 1, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, deal.StatusPending, d.Status)

	_, err = s.CreateDeal(ctx, 1, 50, 8)
	assert.ErrorIs(t, err, market.ErrConflict)

	found, err := s.FindActiveDeal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, d.ID, found.ID)
	assert.Equal(t, 100.0, found.Price)
}

func TestStore_ArchiveCompetingChats(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutListing(market.Listing{ID: 1, OwnerID: 1, Available: true})
	s.PutListing(market.Listing{ID: 2, OwnerID: 1, Available: true})

	c1 := &market.Chat{ListingID: 1, ParticipantID: 2}
	c2 := &market.Chat{ListingID: 1, ParticipantID: 3}
	other := &market.Chat{ListingID: 2, ParticipantID: 3}
	for _, c := range []*market.Chat{c1, c2, other} {
		require.NoError(t, s.CreateChat(ctx, c))
	}
	_, err := s.CreateDeal(ctx, c1.ID, 10, 1)
	require.NoError(t, err)
	competing, err := s.CreateDeal(ctx, c2.ID, 10, 1)
	require.NoError(t, err)
	_, err = s.CreateDeal(ctx, other.ID, 10, 1)
	require.NoError(t, err)

	archived, removed, err := s.ArchiveCompetingChats(ctx, 1, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c2.ID}, archived)
	assert.Equal(t, []int64{competing.ID}, removed)

	d, _ := s.FindActiveDeal(ctx, c2.ID)
	assert.Nil(t, d)
	got, _ := s.GetChat(ctx, c2.ID)
	assert.True(t, got.Archived)

	d, _ = s.FindActiveDeal(ctx, c1.ID)
	assert.NotNil(t, d)
	d, _ = s.FindActiveDeal(ctx, other.ID)
	assert.NotNil(t, d)
	got, _ = s.GetChat(ctx, other.ID)
	assert.False(t, got.Archived)
}

func TestStore_ArchiveCompetingChatsSkipsArchived(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutListing(market.Listing{ID: 1, OwnerID: 1, Available: true})

	c1 := &market.Chat{ListingID: 1, ParticipantID: 2}
	c2 := &market.Chat{ListingID: 1, ParticipantID: 3}
	c3 := &market.Chat{ListingID: 1, ParticipantID: 4}
	for _, c := range []*market.Chat{c1, c2, c3} {
		require.NoError(t, s.CreateChat(ctx, c))
	}
	require.NoError(t, s.ArchiveChat(ctx, c2.ID))

	archived, removed, err := s.ArchiveCompetingChats(ctx, 1, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c3.ID}, archived)
	assert.Empty(t, removed)

	archived, _, err = s.ArchiveCompetingChats(ctx, 1, c1.ID)
	require.NoError(t, err)
	assert.Empty(t, archived)
}

func TestStore_ListChatsForUser(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutListing(market.Listing{ID: 1, OwnerID: 1})
	s.PutListing(market.Listing{ID: 2, OwnerID: 5})
	require.NoError(t, s.CreateChat(ctx, &market.Chat{ListingID: 1, ParticipantID: 2}))
	require.NoError(t, s.CreateChat(ctx, &market.Chat{ListingID: 2, ParticipantID: 1}))
	require.NoError(t, s.CreateChat(ctx, &market.Chat{ListingID: 2, ParticipantID: 3}))

	chats, err := s.ListChatsForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, chats, 2)

	chats, err = s.ListChatsForUser(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}

func TestStore_MarkListingSold(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutListing(market.Listing{ID: 1, OwnerID: 1, Available: true})

	require.NoError(t, s.MarkListingSold(ctx, 1, 9))

	l, err := s.GetListing(ctx, 1)
	require.NoError(t, err)
	assert.False(t, l.Available)
	require.NotNil(t, l.SoldTo)
	assert.Equal(t, int64(9), *l.SoldTo)
}
