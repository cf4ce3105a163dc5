package services

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names for fire-and-forget side effects.
const (
	QueueNotifications = "notifications"
	QueueActivityLogs  = "activity_logs"
)

// QueuePublisher abstracts the broker so services and tests do not
// depend on a live RabbitMQ instance.
type QueuePublisher interface {
	Publish(queueName string, body []byte) error
}

// AMQPPublisher publishes messages over a shared RabbitMQ connection.
type AMQPPublisher struct {
	conn *amqp.Connection
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn}, nil
}

// Publish declares the queue (idempotent) and sends one JSON message.
func (p *AMQPPublisher) Publish(queueName string, body []byte) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return ch.PublishWithContext(ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}
