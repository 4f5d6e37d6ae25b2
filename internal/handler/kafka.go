package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/publisher"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"

	"github.com/segmentio/kafka-go"
)

type PaymentApplier interface {
	ApplyPaymentConfirmation(ctx context.Context, c entities.PaymentConfirmation) error
}

type ProductSoldMarker interface {
	MarkSold(ctx context.Context, id string) (entities.Product, error)
}

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageHandler обрабатывает одно сообщение. Ошибка отправляет сообщение в DLQ.
type MessageHandler func(ctx context.Context, m kafka.Message) error

type Consumer struct {
	name   string
	reader Reader
	dlq    Writer
	logger *slog.Logger
	handle MessageHandler
}

func NewKafkaConsumer(logger *slog.Logger, cfg config.Kafka, topic string, handle MessageHandler) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return NewConsumer(logger, topic, reader, dlq, handle)
}

func NewConsumer(logger *slog.Logger, name string, reader Reader, dlq Writer, handle MessageHandler) *Consumer {
	return &Consumer{
		name:   name,
		reader: reader,
		dlq:    dlq,
		logger: logger.With(slog.String("handler", "kafka"), slog.String("consumer", name)),
		handle: handle,
	}
}

func (c *Consumer) Consume(ctx context.Context) {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			c.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		c.process(ctx, m)
	}
}

func (c *Consumer) process(ctx context.Context, m kafka.Message) {
	messagesInProgress.WithLabelValues(c.name).Inc()
	defer messagesInProgress.WithLabelValues(c.name).Dec()
	start := time.Now()

	err := c.handle(ctx, m)
	processingDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())

	if err != nil {
		messagesFailed.WithLabelValues(c.name).Inc()
		c.logger.Error("failed to handle message",
			slog.Any("error", err),
			slog.Int64("offset", m.Offset),
		)

		// У writer свой retry
		if err := c.writeToDLQ(ctx, m); err != nil {
			c.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		messagesDLQ.WithLabelValues(c.name).Inc()
	} else {
		messagesProcessed.WithLabelValues(c.name).Inc()
	}

	if err := c.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.WithLabelValues(c.name).Inc()
		c.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (c *Consumer) writeToDLQ(ctx context.Context, m kafka.Message) error {
	return c.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return err
	}
	return c.dlq.Close()
}

var consumerRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
}

// PaymentConfirmations применяет подтверждения оплаты из топика платежей.
func PaymentConfirmations(svc PaymentApplier) MessageHandler {
	validate := newValidator()
	return func(ctx context.Context, m kafka.Message) error {
		var msg PaymentConfirmation
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal payment confirmation: %w", err)
		}
		if err := validate.Struct(msg); err != nil {
			return fmt.Errorf("invalid payment confirmation: %w", err)
		}

		confirmation := entities.PaymentConfirmation{
			OrderID:   msg.OrderID,
			Status:    entities.PaymentStatus(msg.Status),
			Reference: msg.Reference,
		}
		return utils.Retry(ctx, consumerRetry, func() error {
			return svc.ApplyPaymentConfirmation(ctx, confirmation)
		}, entities.ErrOrderNotFound)
	}
}

// ProductSoldReconciliation помечает проданными товары, которые не удалось
// обновить при завершении заказа.
func ProductSoldReconciliation(svc ProductSoldMarker) MessageHandler {
	validate := newValidator()
	return func(ctx context.Context, m kafka.Message) error {
		var msg publisher.ProductSoldMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal product sold task: %w", err)
		}
		if err := validate.Struct(msg); err != nil {
			return fmt.Errorf("invalid product sold task: %w", err)
		}

		return utils.Retry(ctx, consumerRetry, func() error {
			_, err := svc.MarkSold(ctx, msg.ProductID)
			return err
		}, entities.ErrProductNotFound)
	}
}
