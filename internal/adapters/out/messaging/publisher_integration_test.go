package messaging_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"canteen/internal/adapters/out/messaging"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/suite"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type PublisherIntegrationTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *tckafka.KafkaContainer
	brokers   []string
}

func TestPublisherIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PublisherIntegrationTestSuite))
}

func (s *PublisherIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tckafka.Run(s.ctx, "confluentinc/confluent-local:7.8.0",
		tckafka.WithClusterID("canteen-test"),
	)
	s.Require().NoError(err)
	s.container = container

	s.brokers, err = container.Brokers(s.ctx)
	s.Require().NoError(err)

	otel.SetTracerProvider(sdktrace.NewTracerProvider())
	otel.SetTextMapPropagator(propagation.TraceContext{})
}

func (s *PublisherIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *PublisherIntegrationTestSuite) read(topic string, n int) []kafka.Message {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     s.brokers,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MaxWait:     500 * time.Millisecond,
	})
	defer func() { _ = reader.Close() }()

	ctx, cancel := context.WithTimeout(s.ctx, 30*time.Second)
	defer cancel()

	msgs := make([]kafka.Message, 0, n)
	for len(msgs) < n {
		msg, err := reader.ReadMessage(ctx)
		s.Require().NoError(err)
		msgs = append(msgs, msg)
	}
	return msgs
}

func (s *PublisherIntegrationTestSuite) TestPublish_DeliversEventsInOrder() {
	topic := "orders-in-order"
	publisher, err := messaging.NewPublisher(s.brokers, topic)
	s.Require().NoError(err)
	defer func() { _ = publisher.Close() }()

	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	ctx, span := otel.Tracer("test").Start(s.ctx, "checkout")
	err = publisher.Publish(ctx,
		order.PlacedEvent{
			OrderID:       9,
			CustomerName:  "Asha Rao",
			GrandTotal:    kernel.MustParseMoney("231.00"),
			PaymentMethod: order.Online,
			ItemCount:     2,
			At:            at,
		},
		order.StatusChangedEvent{OrderID: 9, From: order.Received, To: order.Ready, At: at.Add(time.Minute)},
	)
	span.End()
	s.Require().NoError(err)

	msgs := s.read(topic, 2)

	var first, second messaging.Envelope
	s.Require().NoError(json.Unmarshal(msgs[0].Value, &first))
	s.Require().NoError(json.Unmarshal(msgs[1].Value, &second))

	s.Equal("order.placed", first.Event)
	s.Equal("order.status_changed", second.Event)
	s.Equal("9", string(msgs[0].Key))
	s.Equal("9", string(msgs[1].Key))
	s.NotEmpty(messaging.NewMessageCarrier(&msgs[0]).Get("traceparent"))
}

func (s *PublisherIntegrationTestSuite) TestPublish_NoEvents() {
	publisher, err := messaging.NewPublisher(s.brokers, "orders-empty")
	s.Require().NoError(err)
	defer func() { _ = publisher.Close() }()

	s.NoError(publisher.Publish(s.ctx))
}
