// Package events publishes prediction analytics events to Kafka.
package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"go.uber.org/zap"
)

// Producer is implemented by anything that can carry prediction events.
type Producer interface {
	PublishPrediction(event models.PredictionEvent) error
	Close() error
}

type SaramaProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

func NewSaramaProducer(cfg models.KafkaConfig, logger *zap.Logger) (*SaramaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.BrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	logger.Info("Sarama producer created", zap.Strings("brokers", brokerList), zap.String("topic", cfg.Topic))
	return &SaramaProducer{producer: producer, topic: cfg.Topic, logger: logger}, nil
}

func (s *SaramaProducer) PublishPrediction(event models.PredictionEvent) error {
	if s.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode prediction event: %w", err)
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Place),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		s.logger.Error("failed to send prediction event", zap.String("topic", s.topic), zap.Error(err))
		return err
	}

	return nil
}

func (s *SaramaProducer) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
