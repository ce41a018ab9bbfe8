package usecase

import (
	"context"
	"strings"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/validate"
	"cardlink-backend/pkg/kafka"

	"go.uber.org/zap"
)

type InboxStore interface {
	CreateMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, receiverID string) ([]*domain.Message, error)
	MarkMessageRead(ctx context.Context, receiverID string, messageID int64) error
	CreateNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, recipientID string, notificationID int64) error
}

type InboxUsecase struct {
	inbox  InboxStore
	users  UserStore
	events EventPublisher
	logger *zap.Logger
}

func NewInboxUsecase(inbox InboxStore, users UserStore, events EventPublisher, logger *zap.Logger) *InboxUsecase {
	return &InboxUsecase{inbox: inbox, users: users, events: events, logger: logger}
}

func (uc *InboxUsecase) SendMessage(ctx context.Context, senderID, receiverID, content string) (*domain.Message, validate.Errors, error) {
	var errs validate.Errors

	if strings.TrimSpace(content) == "" {
		errs = append(errs, validate.NewFieldError("content", "This field is required."))
	}
	if receiverID == "" {
		errs = append(errs, validate.NewFieldError("receiver", "This field is required."))
	}
	if !errs.Empty() {
		return nil, errs, nil
	}

	if _, err := uc.users.GetByID(ctx, receiverID); err != nil {
		return nil, nil, err
	}

	m := &domain.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	if err := uc.inbox.CreateMessage(ctx, m); err != nil {
		return nil, nil, err
	}

	uc.publishPush(ctx, receiverID, &senderID, "message", "New message", content)
	return m, nil, nil
}

func (uc *InboxUsecase) ListInbox(ctx context.Context, receiverID string) ([]*domain.Message, error) {
	return uc.inbox.ListMessages(ctx, receiverID)
}

func (uc *InboxUsecase) MarkMessageRead(ctx context.Context, receiverID string, messageID int64) error {
	return uc.inbox.MarkMessageRead(ctx, receiverID, messageID)
}

// SendNotification stores a notification from a staff sender. The type
// defaults to system when omitted.
func (uc *InboxUsecase) SendNotification(ctx context.Context, senderID, recipientID, title, message, notificationType string, link *string) (*domain.Notification, validate.Errors, error) {
	var errs validate.Errors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, validate.NewFieldError("title", "This field is required."))
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, validate.NewFieldError("message", "This field is required."))
	}
	if recipientID == "" {
		errs = append(errs, validate.NewFieldError("recipient", "This field is required."))
	}
	if notificationType == "" {
		notificationType = domain.NotificationSystem
	}
	if !domain.ValidNotificationType(notificationType) {
		errs = append(errs, validate.NewFieldError("notification_type", "Notification type is not supported."))
	}
	if !errs.Empty() {
		return nil, errs, nil
	}

	if _, err := uc.users.GetByID(ctx, recipientID); err != nil {
		return nil, nil, err
	}

	n := &domain.Notification{
		RecipientID:      recipientID,
		SenderID:         &senderID,
		Title:            title,
		Message:          message,
		Link:             link,
		NotificationType: notificationType,
	}
	if err := uc.inbox.CreateNotification(ctx, n); err != nil {
		return nil, nil, err
	}

	uc.publishPush(ctx, recipientID, &senderID, "notification", title, message)
	return n, nil, nil
}

func (uc *InboxUsecase) ListNotifications(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	return uc.inbox.ListNotifications(ctx, recipientID)
}

func (uc *InboxUsecase) MarkNotificationRead(ctx context.Context, recipientID string, notificationID int64) error {
	return uc.inbox.MarkNotificationRead(ctx, recipientID, notificationID)
}

// publishPush emits a delivery event; a failed or absent broker never
// fails the write that triggered it.
func (uc *InboxUsecase) publishPush(ctx context.Context, recipientID string, senderID *string, kind, title, body string) {
	if uc.events == nil {
		return
	}
	ev := &kafka.PushEvent{
		RecipientID: recipientID,
		SenderID:    senderID,
		Kind:        kind,
		Title:       title,
		Body:        body,
	}
	if err := uc.events.PublishPush(ctx, ev); err != nil {
		uc.logger.Warn("push event publish failed",
			zap.String("recipient_id", recipientID),
			zap.String("kind", kind),
			zap.Error(err))
	}
}
