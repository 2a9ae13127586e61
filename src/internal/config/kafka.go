package config

import (
	"github.com/spf13/viper"

	kafkaPkg "github.com/bcaffe88/cardapio-completo/src/pkg/kafka"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

func NewKafkaConfig(viper *viper.Viper) kafkaPkg.KafkaConfig {
	configKafka := kafkaPkg.Cfg{
		KafkaUrl:      viper.GetString("kafka.bootstrap.servers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		AppName:       viper.GetString("kafka.app.name"),
	}
	return kafkaPkg.InitKafkaConfig(configKafka)
}

func NewKafkaProducer(config *viper.Viper, log log.Log) kafkaPkg.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}
	kafkaProducer, err := kafkaPkg.NewProducer(kafkaPkg.GetConfig(), log)
	if err != nil {
		panic(err)
	}

	return kafkaProducer
}
