package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	TopicUserRegistration = "user.registration"
	TopicNotificationPush = "notification.push"
)

// RegistrationEvent is published when a signup is finalized.
type RegistrationEvent struct {
	RequestID    string    `json:"request_id"`
	UserID       string    `json:"user_id"`
	MobileNumber string    `json:"mobile_number"`
	Email        *string   `json:"email,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// PushEvent is published when a notification or direct message is created,
// for downstream delivery channels (push, email).
type PushEvent struct {
	RequestID   string    `json:"request_id"`
	RecipientID string    `json:"recipient_id"`
	SenderID    *string   `json:"sender_id,omitempty"`
	Kind        string    `json:"kind"` // notification | message
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventProducer struct {
	producer sarama.SyncProducer
}

func NewEventProducer(brokers []string) (*EventProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &EventProducer{producer: producer}, nil
}

func (p *EventProducer) PublishRegistration(ctx context.Context, ev *RegistrationEvent) error {
	if ev.RequestID == "" {
		ev.RequestID = uuid.New().String()
	}
	return p.publish(TopicUserRegistration, ev.RequestID, ev)
}

func (p *EventProducer) PublishPush(ctx context.Context, ev *PushEvent) error {
	if ev.RequestID == "" {
		ev.RequestID = uuid.New().String()
	}
	return p.publish(TopicNotificationPush, ev.RequestID, ev)
}

func (p *EventProducer) publish(topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key), // partition by request ID
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (p *EventProducer) Close() error {
	return p.producer.Close()
}
