package kafka

import (
	"context"

	"github.com/Badmus2018/gogdripsv1/config"
	"github.com/segmentio/kafka-go"
)

var KafkaConn *kafka.Conn

func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	KafkaConn = conn
	return KafkaConn
}

func CreateKafkaReader(config *config.Config) *kafka.Reader {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{config.KafkaConfig.BrokerAddress},
		Topic:   config.KafkaConfig.BrokerTopic,
		GroupID: config.KafkaConfig.ConsumerGroup,
	})

	return reader
}
