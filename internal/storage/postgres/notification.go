package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"shopsync/internal/domain"
)

type NotificationStore struct {
	db *sqlx.DB
}

func NewNotificationStore(db *sqlx.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, product_id, kind, message)
		VALUES ($1, $2, $3, $4)`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		notification.ID,
		notification.ProductID,
		notification.Kind,
		notification.Message,
	)
	return err
}
