package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/gh215tth/QLTV-dart/pkg/circuit_breaker"
	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev kafka.LoanEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Type != kafka.EventLoanBorrowed || ev.LoanID != 10 || len(ev.BookIDs) != 1 || ev.BookIDs[0] != 5 {
			return errors.New("unexpected event")
		}
		return nil
	})

	cb := circuit_breaker.New(10, time.Second, 0.5, 1)
	pub := kafka.NewPublisher(producer, kafka.LoanTopic, cb)

	err := pub.Publish(context.Background(), kafka.NewLoanEvent(kafka.EventLoanBorrowed, 10, 2, []int{5}))
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestPublisher_OpensCircuit(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	cb := circuit_breaker.New(1, time.Minute, 1, 1)
	pub := kafka.NewPublisher(producer, kafka.LoanTopic, cb)
	ev := kafka.NewLoanEvent(kafka.EventLoanReturned, 1, 0, []int{1})

	require.ErrorIs(t, pub.Publish(context.Background(), ev), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, pub.Publish(context.Background(), ev), circuit_breaker.ErrOpenCB)
	require.NoError(t, producer.Close())
}
