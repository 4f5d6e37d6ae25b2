package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer Writer

	orderEventsTopic    string
	smsTopic            string
	reconciliationTopic string
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return NewPublisher(writer, cfg)
}

func NewPublisher(w Writer, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		writer:              w,
		orderEventsTopic:    cfg.OrderEventsTopic,
		smsTopic:            cfg.SMSTopic,
		reconciliationTopic: cfg.ReconciliationTopic,
	}
}

type orderEventMessage struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	ProductID      string    `json:"product_id"`
	BuyerID        string    `json:"buyer_id"`
	SellerID       string    `json:"seller_id"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status,omitempty"`
	ActorID        string    `json:"actor_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error {
	return p.write(ctx, p.orderEventsTopic, e.OrderID, orderEventMessage{
		Type:           e.Type,
		OrderID:        e.OrderID,
		OrderNumber:    e.OrderNumber,
		ProductID:      e.ProductID,
		BuyerID:        e.BuyerID,
		SellerID:       e.SellerID,
		PreviousStatus: string(e.PreviousStatus),
		Status:         string(e.Status),
		PaymentStatus:  string(e.PaymentStatus),
		ActorID:        e.ActorID,
		OccurredAt:     e.OccurredAt,
	})
}

type smsMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (p *kafkaPublisher) SendSMS(ctx context.Context, sms entities.SMS) error {
	return p.write(ctx, p.smsTopic, sms.To, smsMessage{To: sms.To, Body: sms.Body})
}

// ProductSoldMessage формат сообщения в топике сверки проданных товаров.
type ProductSoldMessage struct {
	ProductID string    `json:"product_id" validate:"required,uuid"`
	OrderID   string    `json:"order_id" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *kafkaPublisher) EnqueueProductSold(ctx context.Context, task entities.ProductSoldTask) error {
	return p.write(ctx, p.reconciliationTopic, task.ProductID, ProductSoldMessage{
		ProductID: task.ProductID,
		OrderID:   task.OrderID,
		CreatedAt: task.CreatedAt,
	})
}

func (p *kafkaPublisher) write(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := kafka.Message{Topic: topic, Key: []byte(key), Value: data}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
