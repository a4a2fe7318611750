package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepoPG struct{ pool *pgxpool.Pool }

func NewNotificationRepoPG(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepoPG{pool: pool}
}

func (r *notificationRepoPG) Create(ctx context.Context, n *Notification) error {
	n.ID = uuid.New()
	n.DateSent = time.Now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sms_notification (notification_id, patient_id, message, date_sent)
		VALUES ($1,$2,$3,$4)`,
		n.ID, n.PatientID, n.Message, n.DateSent)
	return err
}

func (r *notificationRepoPG) Recent(ctx context.Context, limit int) ([]*Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT notification_id, patient_id, message, date_sent
		FROM sms_notification ORDER BY date_sent DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.PatientID, &n.Message, &n.DateSent); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

func (r *notificationRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sms_notification WHERE notification_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
