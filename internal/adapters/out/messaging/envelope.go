package messaging

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"canteen/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// Envelope is the JSON body of every order event on the topic.
type Envelope struct {
	Event      string          `json:"event"`
	OrderID    int64           `json:"order_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

type placedData struct {
	CustomerName  string `json:"customer_name"`
	GrandTotal    string `json:"grand_total"`
	PaymentMethod string `json:"payment_method"`
	ItemCount     int    `json:"item_count"`
}

type statusChangedData struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewMessage encodes a domain event as a kafka message keyed by order id,
// so every event of one order lands on the same partition in order.
func NewMessage(event order.DomainEvent) (kafka.Message, error) {
	data, err := encodeData(event)
	if err != nil {
		return kafka.Message{}, err
	}

	body, err := json.Marshal(Envelope{
		Event:      event.EventName(),
		OrderID:    int64(event.AggregateID()),
		OccurredAt: event.OccurredAt().UTC(),
		Data:       data,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s: %w", event.EventName(), err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(int64(event.AggregateID()), 10)),
		Value: body,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.EventName())},
		},
	}, nil
}

func encodeData(event order.DomainEvent) (json.RawMessage, error) {
	var v any
	switch e := event.(type) {
	case order.PlacedEvent:
		v = placedData{
			CustomerName:  e.CustomerName,
			GrandTotal:    e.GrandTotal.String(),
			PaymentMethod: e.PaymentMethod.String(),
			ItemCount:     e.ItemCount,
		}
	case order.StatusChangedEvent:
		v = statusChangedData{From: e.From.String(), To: e.To.String()}
	default:
		return nil, fmt.Errorf("unsupported event %T", event)
	}
	return json.Marshal(v)
}
