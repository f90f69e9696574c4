package events

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	OrderCreated       = "order.created"
	OrderReplaced      = "order.replaced"
	OrderStatusChanged = "order.status_changed"
	OrderDeleted       = "order.deleted"
)

type OrderEvent struct {
	OrderID  uint      `json:"orderId"`
	UserID   uint      `json:"userId"`
	Type     string    `json:"type"`
	Status   bool      `json:"status"`
	Total    string    `json:"total"`
	Occurred time.Time `json:"occurred"`
}

// Publisher fans order lifecycle events out to interested consumers. Publishing
// is fire-and-forget after the DB transaction commits; a broker failure never
// fails the request.
type Publisher interface {
	PublishOrderEvent(ev OrderEvent) error
	Close()
}

type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(OrderEvent) error { return nil }
func (NopPublisher) Close()                             {}

type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) PublishOrderEvent(ev OrderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		p.exchange,
		ev.Type,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    ev.Occurred,
			ContentType:  "application/json",
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
