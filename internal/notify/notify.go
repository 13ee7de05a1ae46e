// Package notify publishes circulation events for the notification
// collaborator. Delivery is fire-and-forget: a failed publish is logged and
// dropped, it never fails the operation that produced it.
package notify

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/pkg/circuit_breaker"
	"github.com/campuslib/circulation-service/pkg/kafka"
)

type EventType string

const (
	EventBookIssued            EventType = "BookIssued"
	EventBookReturned          EventType = "BookReturned"
	EventRegistrationCompleted EventType = "RegistrationCompleted"
)

type Event struct {
	Type      EventType      `json:"type"`
	Recipient string         `json:"recipient,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	At        time.Time      `json:"at"`
}

type Notifier struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewNotifier(producer sarama.SyncProducer, log *zap.Logger) *Notifier {
	const (
		cbRecordLength     = 20
		cbTimeout          = 30 * time.Second
		cbPercentile       = 0.5
		cbRecoveryRequests = 3
	)
	return &Notifier{
		producer: producer,
		cb:       circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		log:      log.Named("notify"),
	}
}

func (n *Notifier) Notify(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	value, err := json.Marshal(e)
	if err != nil {
		n.log.Error("marshal event", zap.Error(err))
		return
	}

	err = n.cb.Call(func() error {
		_, _, sendErr := n.producer.SendMessage(&sarama.ProducerMessage{
			Topic: kafka.NotificationsTopic,
			Value: sarama.ByteEncoder(value),
		})
		return sendErr
	})
	if err != nil {
		n.log.Warn("notification dropped",
			zap.String("type", string(e.Type)),
			zap.Error(err))
		return
	}
	n.log.Debug("notification published", zap.String("type", string(e.Type)))
}
