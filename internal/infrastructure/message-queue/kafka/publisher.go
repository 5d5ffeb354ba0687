package kafka

import "github.com/segmentio/kafka-go"

type Publisher struct {
	conn *kafka.Conn
}

func CreatePublisher(conn *kafka.Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) Publish(msg []byte, key string) error {
	message := kafka.Message{
		Value: msg,
	}
	if key != "" {
		message.Key = []byte(key)
	}

	_, err := p.conn.WriteMessages(message)
	return err
}
