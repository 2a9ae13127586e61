package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

type producer struct {
	sync   sarama.SyncProducer
	logger log.Log
}

// NewProducer creates a sync producer from the loaded config.
func NewProducer(kc KafkaConfig, logger log.Log) (Producer, error) {
	sp, err := sarama.NewSyncProducer(kc.Brokers, kc.GetSaramaConfig())
	if err != nil {
		logger.Error("kafka", fmt.Sprintf("failed to create producer: %v", err), "NewProducer", "")
		return nil, err
	}
	return &producer{sync: sp, logger: logger}, nil
}

func (p *producer) Publish(topic string, key []byte, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		p.logger.Error("kafka", fmt.Sprintf("failed to publish to %s: %v", topic, err), "Publish", "")
		return err
	}

	p.logger.Info("kafka", fmt.Sprintf("published to %s partition=%d offset=%d", topic, partition, offset), "Publish", "")
	return nil
}

func (p *producer) Close() error {
	return p.sync.Close()
}
