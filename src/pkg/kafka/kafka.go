package kafka

import (
	"strings"

	"github.com/IBM/sarama"
)

// Producer is the publishing surface the messaging gateway depends on.
type Producer interface {
	Publish(topic string, key []byte, value []byte) error
	Close() error
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	AppName       string
}

type KafkaConfig struct {
	Brokers       []string
	Username      string
	Password      string
	SaslMechanism string
	AppName       string
}

var kafkaConfig KafkaConfig

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	kafkaConfig = KafkaConfig{
		Brokers:       strings.Split(cfg.KafkaUrl, ","),
		Username:      cfg.KafkaUsername,
		Password:      cfg.KafkaPassword,
		AppName:       cfg.AppName,
		SaslMechanism: sarama.SASLTypePlaintext,
	}
	return kafkaConfig
}

func GetConfig() KafkaConfig {
	return kafkaConfig
}

func (kc KafkaConfig) GetSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = kc.AppName
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3
	cfg.Metadata.Retry.Backoff = 500

	if kc.Username != "" {
		cfg.Net.SASL.Enable = true
		cfg.Net.SASL.Mechanism = sarama.SASLMechanism(kc.SaslMechanism)
		cfg.Net.SASL.User = kc.Username
		cfg.Net.SASL.Password = kc.Password
		cfg.Net.TLS.Enable = true
	}

	return cfg
}
