package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/service/events"
)

// HandleFunc processes a single events.Event from Kafka
type HandleFunc func(context.Context, events.Event) error

var newConsumerGroup = sarama.NewConsumerGroup

const retryDelay = time.Second

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
}

// NewConsumer creates a new Kafka consumer. It returns nil, nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = "homecare-scheduler"
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = false

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
	}, nil
}

// Run consumes until ctx is done. Consume errors are logged and retried.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks malformed and permanently failing messages; a transient
// handler error ends the claim without marking so the message is redelivered.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log := h.c.logger
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			log.Warn("kafka bad json",
				logx.String("event", "kafka_bad_message"),
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
			sess.MarkMessage(msg, "")
			continue
		}
		ev, err := ToDomain(dto)
		if err != nil {
			log.Warn("kafka invalid patient_id",
				logx.String("event", "kafka_bad_message"),
				logx.Int64("offset", msg.Offset),
				logx.String("patient_id", dto.PatientID),
			)
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			if IsPermanent(err) {
				log.Error("kafka handle failed, skipping message",
					logx.String("patient_id", ev.PatientID.String()),
					logx.String("kind", ev.Kind),
					logx.Err(err),
				)
				sess.MarkMessage(msg, "")
				continue
			}
			log.Warn("kafka handle failed, will retry",
				logx.String("patient_id", ev.PatientID.String()),
				logx.String("kind", ev.Kind),
				logx.Err(err),
			)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
