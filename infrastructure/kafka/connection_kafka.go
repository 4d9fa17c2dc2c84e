package kafka

import (
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/lysu/kazoo-go"
)

type Storage struct {
	sarama.SyncProducer
	*kazoo.Kazoo
	brokers []string
}

func NewConnection(zkAddrs, brokers string) (storage Storage, err error) {

	conf := kazoo.NewConfig()
	conf.Timeout = time.Minute

	kz, err := kazoo.NewKazoo(strings.Split(zkAddrs, ","), conf)

	if err != nil {
		panic(err)
	}

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), nil)

	if err != nil {
		panic(err)
	}

	return Storage{
		Kazoo:        kz,
		SyncProducer: producer,
		brokers:      strings.Split(brokers, ","),
	}, err

}

// EnsureTopic checks zookeeper for the topic and creates it when missing.
func (s Storage) EnsureTopic(name string, partitions, replicas int) error {
	exists, err := s.Kazoo.Topic(name).Exists()
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	conf := sarama.NewConfig()
	conf.Version = sarama.V1_0_0_0

	admin, err := sarama.NewClusterAdmin(s.brokers, conf)
	if err != nil {
		return err
	}
	defer admin.Close()

	return admin.CreateTopic(name, &sarama.TopicDetail{
		NumPartitions:     int32(partitions),
		ReplicationFactor: int16(replicas),
	}, false)
}

func (s Storage) PublishOutcome(topic string, payload []byte) error {
	_, _, err := s.SyncProducer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(payload),
	})

	return err
}
