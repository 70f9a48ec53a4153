package pubsub

import (
	"context"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, headers map[string]string, message []byte) error
	Close() error
}

type kafkaPublisher struct {
	logger   *logrus.Logger
	producer *kafka.Producer
}

func PublisherFromConfluentKafkaProducer(logger *logrus.Logger, producer *kafka.Producer) Publisher {
	return &kafkaPublisher{
		logger:   logger,
		producer: producer,
	}
}

// Publish implements Publisher.
func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, headers map[string]string, message []byte) error {
	kafkaHeaders := make([]kafka.Header, 0, len(headers))
	for k, v := range headers {
		kafkaHeaders = append(kafkaHeaders, kafka.Header{Key: k, Value: []byte(v)})
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Headers:        kafkaHeaders,
		Value:          message,
	}

	if err := p.producer.Produce(msg, nil); err != nil {
		p.logger.WithContext(ctx).WithError(err).Error()
		return err
	}

	return nil
}

// Close implements Publisher.
func (p *kafkaPublisher) Close() error {
	p.producer.Flush(5000)
	p.producer.Close()
	return nil
}
