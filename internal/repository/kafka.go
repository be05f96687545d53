package repository

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"ImageStyler/internal/model"
)

type EventProducer interface {
	Publish(ctx context.Context, event model.ProcessedEvent) error
	Close() error
}

type EventConsumer interface {
	ConsumeEvents(ctx context.Context, out chan<- kafkago.Message)
	CommitOffset(ctx context.Context, msg kafkago.Message) error
	Close() error
}

type ProcessedEventConsumer struct {
	Consumer *kafka.Consumer
}

type ProcessedEventProducer struct {
	Producer *kafka.Producer
}

func NewProcessedEventConsumer(brokers []string, topic, groupID string) *ProcessedEventConsumer {
	c := kafka.NewConsumer(brokers, topic, groupID)
	return &ProcessedEventConsumer{Consumer: c}
}

func (c *ProcessedEventConsumer) ConsumeEvents(ctx context.Context, out chan<- kafkago.Message) {

	defer close(out)
	for {

		msg, err := c.Consumer.FetchWithRetry(ctx, retry.Strategy{
			Attempts: 1,
			Delay:    1 * time.Second,
			Backoff:  2,
		})
		if err != nil {
			if errCtx := ctx.Err(); errCtx != nil {
				return
			}
			zlog.Logger.Error().Msgf("Consumer fetch error: %s", err.Error())
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}

	}

}

func (c *ProcessedEventConsumer) CommitOffset(ctx context.Context, msg kafkago.Message) error {
	return c.Consumer.Commit(ctx, msg)
}

func (c *ProcessedEventConsumer) Close() error {
	return c.Consumer.Close()
}

func NewProcessedEventProducer(brokers []string, topic string) *ProcessedEventProducer {
	p := kafka.NewProducer(brokers, topic)
	return &ProcessedEventProducer{Producer: p}
}

func (p *ProcessedEventProducer) Publish(ctx context.Context, event model.ProcessedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	strategy := retry.Strategy{
		Attempts: 3,
		Delay:    1 * time.Second,
		Backoff:  2,
	}

	return p.Producer.SendWithRetry(ctx, strategy, nil, data)
}

func (p *ProcessedEventProducer) Close() error {
	return p.Producer.Close()
}
