package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
)

type cartRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCartRepository(db *DB) repository.CartRepository {
	return &cartRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Carts are one row per user with the items as a JSONB document. The cart is
// always written whole, so there is no per-item table to keep consistent.
type cartRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Items     []byte    `db:"items"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	var row cartRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, items, created_at, updated_at FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	cart := &domain.Cart{
		ID:        row.ID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := fromJSONB(row.Items, &cart.Items); err != nil {
		r.logger.Error("Failed to decode cart items", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	return cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	items, err := toJSONB(cart.Items)
	if err != nil {
		r.logger.Error("Failed to encode cart items", zap.Error(err))
		return errors.ErrInternalServer
	}
	if items == nil {
		items = []byte("[]")
	}

	query := `
		INSERT INTO carts (id, user_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			items = EXCLUDED.items,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query,
		cart.ID, cart.UserID, items, cart.CreatedAt, cart.UpdatedAt); err != nil {
		r.logger.Error("Failed to save cart", zap.String("user_id", cart.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		r.logger.Error("Failed to delete cart", zap.String("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *cartRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	items, err := toJSONB(order.Items)
	if err != nil {
		r.logger.Error("Failed to encode order items", zap.Error(err))
		return errors.ErrInternalServer
	}

	query := `
		INSERT INTO orders (id, user_id, items, total_amount, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(ctx, query,
		order.ID, order.UserID, items, order.TotalAmount,
		order.Status, order.Notes, order.CreatedAt); err != nil {
		r.logger.Error("Failed to create order",
			zap.String("user_id", order.UserID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
