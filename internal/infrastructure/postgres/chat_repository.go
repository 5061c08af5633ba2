package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketplace/dealchat/internal/domain/market"
)

// ChatRepository implements market.Repository.
type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

const listingColumns = `id, user_id, title, price, old_price, available, archived, sold_to, created_at, updated_at`
const chatColumns = `id, advert_id, participant_id, archived, created_at, updated_at`

func (r *ChatRepository) GetUser(ctx context.Context, userID int64) (*market.User, error) {
	var u market.User
	err := r.pool.QueryRow(ctx, `SELECT id, COALESCE(name, ''), banned FROM "user" WHERE id=$1`, userID).
		Scan(&u.ID, &u.Name, &u.Banned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *ChatRepository) GetListing(ctx context.Context, listingID int64) (*market.Listing, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM advert WHERE id=$1`, listingID)
	return scanListing(row)
}

func (r *ChatRepository) SetListingAvailable(ctx context.Context, listingID int64, available bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE advert SET available=$1, updated_at=now() WHERE id=$2`, available, listingID)
	return err
}

func (r *ChatRepository) MarkListingSold(ctx context.Context, listingID, buyerID int64) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE advert SET available=false, sold_to=$1, updated_at=now()
		WHERE id=$2
	`, buyerID, listingID)
	return err
}

func (r *ChatRepository) GetChat(ctx context.Context, chatID int64) (*market.Chat, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+chatColumns+` FROM chat WHERE id=$1`, chatID)
	return scanChat(row)
}

func (r *ChatRepository) FindChat(ctx context.Context, listingID, participantID int64) (*market.Chat, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+chatColumns+` FROM chat WHERE advert_id=$1 AND participant_id=$2
	`, listingID, participantID)
	return scanChat(row)
}

func (r *ChatRepository) CreateChat(ctx context.Context, c *market.Chat) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat (advert_id, participant_id, archived)
		VALUES ($1,$2,$3)
		RETURNING id, created_at, updated_at
	`, c.ListingID, c.ParticipantID, c.Archived).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: chat already exists", market.ErrConflict)
	}
	return err
}

func (r *ChatRepository) ListChatsForUser(ctx context.Context, userID int64) ([]*market.Chat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.advert_id, c.participant_id, c.archived, c.created_at, c.updated_at
		FROM chat c JOIN advert a ON a.id = c.advert_id
		WHERE c.participant_id=$1 OR a.user_id=$1
		ORDER BY c.updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var chats []*market.Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

func (r *ChatRepository) ArchiveChat(ctx context.Context, chatID int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE chat SET archived=true, updated_at=now() WHERE id=$1`, chatID)
	return err
}

func scanListing(row pgx.Row) (*market.Listing, error) {
	var l market.Listing
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Price, &l.OldPrice, &l.Available, &l.Archived, &l.SoldTo, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func scanChat(row pgx.Row) (*market.Chat, error) {
	var c market.Chat
	if err := row.Scan(&c.ID, &c.ListingID, &c.ParticipantID, &c.Archived, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
