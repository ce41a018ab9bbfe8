package repository

import (
	"context"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InboxRepository struct {
	db *pgxpool.Pool
}

func NewInboxRepository(db *pgxpool.Pool) *InboxRepository {
	return &InboxRepository{db: db}
}

func (r *InboxRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp, is_read
	`, m.SenderID, m.ReceiverID, m.Content).Scan(&m.ID, &m.Timestamp, &m.IsRead)
}

// ListMessages returns the user's received messages newest first, with the
// sender attached.
func (r *InboxRepository) ListMessages(ctx context.Context, receiverID string) ([]*domain.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.timestamp, m.is_read,
		       u.id, u.name, u.email, u.mobile_number, u.country_code, u.is_whatsapp
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.receiver_id = $1
		ORDER BY m.timestamp DESC
	`, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*domain.Message
	for rows.Next() {
		m := &domain.Message{}
		sender := &domain.User{}
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Timestamp, &m.IsRead,
			&sender.ID, &sender.Name, &sender.Email, &sender.MobileNumber, &sender.CountryCode, &sender.IsWhatsApp,
		); err != nil {
			return nil, err
		}
		m.Sender = sender.Public()
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// MarkMessageRead flips is_read for a message the user received. A message
// that exists but is already read returns ErrAlreadyRead; one the user does
// not own (or that does not exist) returns ErrNotFound.
func (r *InboxRepository) MarkMessageRead(ctx context.Context, receiverID string, messageID int64) error {
	var isRead bool
	err := r.db.QueryRow(ctx,
		`SELECT is_read FROM messages WHERE id = $1 AND receiver_id = $2`,
		messageID, receiverID,
	).Scan(&isRead)
	if err == pgx.ErrNoRows {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	if isRead {
		return xerrors.ErrAlreadyRead
	}
	_, err = r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE WHERE id = $1`, messageID)
	return err
}

func (r *InboxRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO notifications (recipient_id, sender_id, title, message, link, notification_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, timestamp, is_read
	`, n.RecipientID, n.SenderID, n.Title, n.Message, n.Link, n.NotificationType).
		Scan(&n.ID, &n.Timestamp, &n.IsRead)
}

func (r *InboxRepository) ListNotifications(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, recipient_id, sender_id, title, message, timestamp, is_read, link, notification_type
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY timestamp DESC
	`, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.Title, &n.Message,
			&n.Timestamp, &n.IsRead, &n.Link, &n.NotificationType,
		); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *InboxRepository) MarkNotificationRead(ctx context.Context, recipientID string, notificationID int64) error {
	var isRead bool
	err := r.db.QueryRow(ctx,
		`SELECT is_read FROM notifications WHERE id = $1 AND recipient_id = $2`,
		notificationID, recipientID,
	).Scan(&isRead)
	if err == pgx.ErrNoRows {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	if isRead {
		return xerrors.ErrAlreadyRead
	}
	_, err = r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, notificationID)
	return err
}
