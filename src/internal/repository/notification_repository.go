package repository

import (
	"context"
	"fmt"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
)

type NotificationRepository struct {
	DB postgres.DBInterface
}

func NewNotificationRepository(db postgres.DBInterface) *NotificationRepository {
	return &NotificationRepository{
		DB: db,
	}
}

// CreateBatch writes one notification row per driver in a single transaction.
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []entity.DeliveryNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO delivery_notifications (driver_id, order_id, message) VALUES ($1, $2, $3)`
	for _, n := range notifications {
		if _, err := tx.ExecContext(ctx, query, n.DriverID, n.OrderID, n.Message); err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
	}

	return tx.Commit()
}
