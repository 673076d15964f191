package kafka

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const LoanTopic = "library.loans"

type EventType string

const (
	EventLoanBorrowed EventType = "loan.borrowed"
	EventLoanReturned EventType = "loan.returned"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type LoanEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	LoanID     int       `json:"loan_id"`
	UserID     int       `json:"user_id,omitempty"`
	BookIDs    []int     `json:"book_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewLoanEvent(typ EventType, loanID, userID int, bookIDs []int) LoanEvent {
	return LoanEvent{
		ID:         uuid.New(),
		Type:       typ,
		LoanID:     loanID,
		UserID:     userID,
		BookIDs:    bookIDs,
		OccurredAt: time.Now().UTC(),
	}
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// Message keys events by loan so one loan's events land on one partition.
func Message(topic string, ev LoanEvent) (*sarama.ProducerMessage, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.Itoa(ev.LoanID)),
		Value: sarama.ByteEncoder(data),
	}, nil
}
