package kafka

import (
	"fmt"
	"time"

	"kitchen-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type Cfg struct {
	Brokers  []string
	Username string
	Password string
	AppName  string
}

var kafkaConfig Cfg

func InitKafkaConfig(cfg Cfg) Cfg {
	kafkaConfig = cfg
	return kafkaConfig
}

func GetConfig() Cfg {
	return kafkaConfig
}

type saramaProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(cfg Cfg, logger log.Log) (Producer, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.AppName
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Timeout = 5 * time.Second
	if cfg.Username != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		config.Net.SASL.User = cfg.Username
		config.Net.SASL.Password = cfg.Password
	}

	prod, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, err
	}
	return &saramaProducer{producer: prod, log: logger}, nil
}

func (p *saramaProducer) Publish(topic string, key, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error("kafka", err.Error(), "Publish", topic)
		return err
	}
	p.log.Info("kafka", "message stored", "Publish",
		fmt.Sprintf("topic=%s partition=%d offset=%d", topic, partition, offset))
	return nil
}

func (p *saramaProducer) Close() error {
	return p.producer.Close()
}
