package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

// KafkaPublisher writes notifications to a topic, keyed by order id so that every
// update for one order lands on the same partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      logrus.FieldLogger
}

// ProducerConfig is the sarama configuration used for notifications.
func ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	return config
}

// NewKafkaPublisher connects a sync producer to brokers.
func NewKafkaPublisher(brokers []string, topic string, log logrus.FieldLogger) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka producer: %w", err)
	}
	log.WithField("brokers", brokers).Info("kafka producer connected")
	return NewKafkaPublisherWithProducer(producer, topic, log), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, log logrus.FieldLogger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, log: log}
}

func (k *KafkaPublisher) Publish(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(n.OrderID), 10)),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send notification to %s: %w", k.topic, err)
	}
	k.log.WithFields(logrus.Fields{
		"topic":     k.topic,
		"partition": partition,
		"offset":    offset,
		"order_id":  n.OrderID,
		"type":      n.Type,
	}).Debug("notification published")
	return nil
}

func (k *KafkaPublisher) Close() error {
	return k.producer.Close()
}
