package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentConfirmation struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

var statuses = []string{"paid", "paid", "paid", "failed", "refunded"}

func randomReference() string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, 10)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return "PN-" + string(b)
}

func generateConfirmation(orderIDs []string) PaymentConfirmation {
	return PaymentConfirmation{
		OrderID:   orderIDs[rand.Intn(len(orderIDs))],
		Status:    statuses[rand.Intn(len(statuses))],
		Reference: randomReference(),
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "payments", "payments topic")
	orders := flag.String("orders", "", "comma separated order ids to confirm")
	interval := flag.Duration("interval", 2*time.Second, "delay between messages")
	flag.Parse()

	if *orders == "" {
		log.Fatal("-orders is required")
	}
	orderIDs := strings.Split(*orders, ",")

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c := generateConfirmation(orderIDs)
			data, _ := json.Marshal(c)
			msgs := []kafka.Message{{Key: []byte(c.OrderID), Value: data}}

			switch rand.Intn(10) {
			case 0:
				// повторная доставка, должна быть проигнорирована
				msgs = append(msgs, msgs[0])
			case 1:
				msgs = append(msgs, kafka.Message{Key: []byte(c.OrderID), Value: []byte("not a json")})
			}

			if err := writer.WriteMessages(ctx, msgs...); err != nil {
				log.Println("failed to write:", err)
				continue
			}
			log.Println("payment confirmation sent", fmt.Sprintf("%s %s %s", c.OrderID, c.Status, c.Reference), "messages:", len(msgs))
		case <-ctx.Done():
			return
		}
	}
}
