package ledger_event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/segmentio/kafka-go"
)

const HandlerName = "ledger_event/balance_changed"

// BalanceChanged is published once per committed unit of work.
type BalanceChanged struct {
	Operation  ledger_core.Operation  `json:"operation"`
	RecordKind string                 `json:"record_kind"`
	RecordID   string                 `json:"record_id"`
	Actor      string                 `json:"actor"`
	Effects    ledger_core.EffectList `json:"effects"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func NewBalanceChanged(info *ledger_core.CommitInfo) *BalanceChanged {
	effects := info.Effects
	if effects == nil {
		effects = ledger_core.EffectList{}
	}

	return &BalanceChanged{
		Operation:  info.Operation,
		RecordKind: string(info.Kind),
		RecordID:   info.RecordID,
		Actor:      info.Actor,
		Effects:    effects,
		OccurredAt: info.OccurredAt,
	}
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer  MessageWriter
	timeout time.Duration
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{
		writer:  writer,
		timeout: 5 * time.Second,
	}
}

// Publish keys messages by record id so every change of one record lands
// on the same partition.
func (p *Publisher) Publish(ctx context.Context, info *ledger_core.CommitInfo) error {
	data, err := json.Marshal(NewBalanceChanged(info))
	if err != nil {
		return fmt.Errorf("marshal balance changed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(info.RecordID),
		Value: data,
		Time:  info.OccurredAt,
	})
}

// Register installs the publisher as a post commit handler.
func (p *Publisher) Register() func() {
	return ledger_core.RegisterCustomHandler(HandlerName, p.Publish)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
