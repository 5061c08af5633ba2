package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketplace/dealchat/internal/domain/deal"
	"github.com/marketplace/dealchat/internal/domain/market"
)

// DealRepository implements deal.Repository.
type DealRepository struct {
	pool *pgxpool.Pool
}

func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

const dealColumns = `id, chat_id, price, requester_id, status, created_at`

func (r *DealRepository) FindActiveDeal(ctx context.Context, chatID int64) (*deal.Deal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+dealColumns+` FROM deal WHERE chat_id=$1`, chatID)
	return scanDeal(row)
}

func (r *DealRepository) GetByID(ctx context.Context, dealID int64) (*deal.Deal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+dealColumns+` FROM deal WHERE id=$1`, dealID)
	return scanDeal(row)
}

func (r *DealRepository) CreateDeal(ctx context.Context, chatID int64, price float64, requesterID int64) (*deal.Deal, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO deal (chat_id, price, requester_id, status)
		VALUES ($1,$2,$3,$4)
		RETURNING `+dealColumns, chatID, price, requesterID, deal.StatusPending)
	d, err := scanDeal(row)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: deal already exists for chat %d", market.ErrConflict, chatID)
	}
	return d, err
}

func (r *DealRepository) SetStatus(ctx context.Context, dealID int64, status deal.Status) (*deal.Deal, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE deal SET status=$1 WHERE id=$2
		RETURNING `+dealColumns, status, dealID)
	return scanDeal(row)
}

func (r *DealRepository) DeleteDeal(ctx context.Context, dealID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM deal WHERE id=$1`, dealID)
	return err
}

func (r *DealRepository) ArchiveCompetingChats(ctx context.Context, listingID, excludeChatID int64) ([]int64, []int64, error) {
	var archived, removed []int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			DELETE FROM deal WHERE chat_id IN (
				SELECT id FROM chat WHERE advert_id=$1 AND id<>$2
			)
			RETURNING id
		`, listingID, excludeChatID)
		if err != nil {
			return fmt.Errorf("delete competing deals: %w", err)
		}
		if removed, err = pgx.CollectRows(rows, pgx.RowTo[int64]); err != nil {
			return fmt.Errorf("delete competing deals: %w", err)
		}

		rows, err = tx.Query(ctx, `
			UPDATE chat SET archived=true, updated_at=now()
			WHERE advert_id=$1 AND id<>$2 AND archived=false
			RETURNING id
		`, listingID, excludeChatID)
		if err != nil {
			return fmt.Errorf("archive competing chats: %w", err)
		}
		archived, err = pgx.CollectRows(rows, pgx.RowTo[int64])
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return archived, removed, nil
}

func scanDeal(row pgx.Row) (*deal.Deal, error) {
	var d deal.Deal
	if err := row.Scan(&d.ID, &d.ChatID, &d.Price, &d.RequesterID, &d.Status, &d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
