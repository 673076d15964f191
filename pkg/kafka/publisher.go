package kafka

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/gh215tth/QLTV-dart/pkg/circuit_breaker"
)

type Publisher interface {
	Publish(ctx context.Context, ev LoanEvent) error
}

type producerPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

// NewPublisher sends through producer; a broken broker trips cb instead of
// stalling every request on the producer timeout.
func NewPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) Publisher {
	return &producerPublisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (p *producerPublisher) Publish(ctx context.Context, ev LoanEvent) error {
	msg, err := Message(p.topic, ev)
	if err != nil {
		return err
	}
	return p.cb.Call(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

type nopPublisher struct{}

func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, LoanEvent) error { return nil }
