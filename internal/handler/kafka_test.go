package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_Consume(t *testing.T) {
	msg := kafka.Message{Topic: "payments", Offset: 7, Key: []byte(orderID), Value: []byte(`{}`)}
	handleErr := errors.New("bad message")

	testCases := []struct {
		name         string
		handleErr    error
		mockBehavior func(reader *mocks.MockReader, dlq *mocks.MockWriter)
	}{
		{
			name: "processed and committed",
			mockBehavior: func(reader *mocks.MockReader, _ *mocks.MockWriter) {
				reader.EXPECT().CommitMessages(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name:      "failed message goes to dlq",
			handleErr: handleErr,
			mockBehavior: func(reader *mocks.MockReader, dlq *mocks.MockWriter) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.MatchedBy(func(m kafka.Message) bool {
					return m.Topic == "payments-dlq" && string(m.Key) == orderID
				})).Return(nil).Once()
				reader.EXPECT().CommitMessages(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name:      "not committed when dlq is down",
			handleErr: handleErr,
			mockBehavior: func(_ *mocks.MockReader, dlq *mocks.MockWriter) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := mocks.NewMockReader(t)
			dlq := mocks.NewMockWriter(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			reader.EXPECT().FetchMessage(mock.Anything).Return(msg, nil).Once()
			reader.EXPECT().FetchMessage(mock.Anything).RunAndReturn(func(context.Context) (kafka.Message, error) {
				cancel()
				return kafka.Message{}, context.Canceled
			}).Once()
			tc.mockBehavior(reader, dlq)

			var handled int
			consumer := handler.NewConsumer(discardLogger(), "payments", reader, dlq, func(_ context.Context, m kafka.Message) error {
				handled++
				assert.Equal(t, msg.Offset, m.Offset)
				return tc.handleErr
			})

			consumer.Consume(ctx)

			assert.Equal(t, 1, handled)
		})
	}
}

func TestConsumer_Close(t *testing.T) {
	reader := mocks.NewMockReader(t)
	dlq := mocks.NewMockWriter(t)
	reader.EXPECT().Close().Return(nil).Once()
	dlq.EXPECT().Close().Return(nil).Once()

	consumer := handler.NewConsumer(discardLogger(), "payments", reader, dlq, nil)

	assert.NoError(t, consumer.Close())
}

func TestPaymentConfirmations(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		mockBehavior func(svc *mocks.MockPaymentApplier)
		wantErr      bool
	}{
		{
			name:  "applied",
			value: `{"order_id":"` + orderID + `","status":"paid","reference":"PN-42"}`,
			mockBehavior: func(svc *mocks.MockPaymentApplier) {
				svc.EXPECT().ApplyPaymentConfirmation(mock.Anything, entities.PaymentConfirmation{
					OrderID:   orderID,
					Status:    entities.PaymentStatusPaid,
					Reference: "PN-42",
				}).Return(nil).Once()
			},
		},
		{
			name:         "malformed json",
			value:        `{"order_id":`,
			mockBehavior: func(*mocks.MockPaymentApplier) {},
			wantErr:      true,
		},
		{
			name:         "malformed order id",
			value:        `{"order_id":"nope","status":"paid","reference":"PN-42"}`,
			mockBehavior: func(*mocks.MockPaymentApplier) {},
			wantErr:      true,
		},
		{
			name:         "pending is not a confirmation",
			value:        `{"order_id":"` + orderID + `","status":"pending","reference":"PN-42"}`,
			mockBehavior: func(*mocks.MockPaymentApplier) {},
			wantErr:      true,
		},
		{
			name:  "unknown order is not retried",
			value: `{"order_id":"00000000-0000-4000-8000-000000000404","status":"failed","reference":"PN-43"}`,
			mockBehavior: func(svc *mocks.MockPaymentApplier) {
				svc.EXPECT().ApplyPaymentConfirmation(mock.Anything, mock.Anything).Return(entities.ErrOrderNotFound).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentApplier(t)
			tc.mockBehavior(svc)

			err := handler.PaymentConfirmations(svc)(context.Background(), kafka.Message{Value: []byte(tc.value)})

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductSoldReconciliation(t *testing.T) {
	t.Run("marks sold after transient failure", func(t *testing.T) {
		svc := mocks.NewMockProductSoldMarker(t)
		svc.EXPECT().MarkSold(mock.Anything, productID).Return(entities.Product{}, errors.New("db error")).Once()
		svc.EXPECT().MarkSold(mock.Anything, productID).Return(entities.Product{ID: productID}, nil).Once()

		err := handler.ProductSoldReconciliation(svc)(context.Background(), kafka.Message{
			Value: []byte(`{"product_id":"` + productID + `","order_id":"` + orderID + `"}`),
		})

		assert.NoError(t, err)
	})

	t.Run("missing product id", func(t *testing.T) {
		svc := mocks.NewMockProductSoldMarker(t)

		err := handler.ProductSoldReconciliation(svc)(context.Background(), kafka.Message{
			Value: []byte(`{"order_id":"` + orderID + `"}`),
		})

		assert.Error(t, err)
	})
}
