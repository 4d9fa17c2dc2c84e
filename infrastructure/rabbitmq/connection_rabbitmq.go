package rabbitmq

import (
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pagomovil-system/utils/gpooling"
)

type options struct {
	Uri        string
	AutoAck    bool
	AutoDelete bool
	Durable    bool
	Exclusive  bool
	NoWait     bool
}

func NewOptions() *options {
	return &options{}
}

func (o *options) WithUri(uri string) *options {
	o.Uri = uri
	return o
}

func (o *options) WithAutoAck(ack bool) *options {
	o.AutoAck = ack
	return o
}

type RabbiMQ struct {
	Connection *amqp.Connection
	IPool      gpooling.IPool
	options
	*zap.Logger
}

func NewRabbiMQ(o options, log *zap.Logger, pool gpooling.IPool) (*RabbiMQ, error) {
	conn, err := amqp.Dial(o.Uri)

	if err != nil {
		panic(err)
	}

	return &RabbiMQ{
		IPool:      pool,
		Connection: conn,
		options:    o,
		Logger:     log,
	}, nil
}

// PublishQueue drops a raw JSON payload on the named queue.
func (r *RabbiMQ) PublishQueue(body []byte, queueName string) error {
	ch, err := r.Connection.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		queueName,
		true,         // durable
		r.AutoDelete, // delete when unused
		r.Exclusive,
		r.NoWait,
		nil,
	)
	if err != nil {
		return err
	}

	err = ch.Publish(
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})

	return err
}

// WithConsumerQueue runs fn for every delivery on the queue, on the shared
// pool. fn must swallow malformed payloads; a returned error only gets
// logged, the delivery is acked either way so poison messages cannot wedge
// the queue.
func (r *RabbiMQ) WithConsumerQueue(fn func(msg []byte) error, queueName string) error {
	r.IPool.Submit(func() {
		ch, err := r.Connection.Channel()
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + queueName,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}
		defer ch.Close()

		q, err := ch.QueueDeclare(
			queueName,
			true,         // durable
			r.AutoDelete, // delete when unused
			r.Exclusive,
			r.NoWait,
			nil,
		)
		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + queueName,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		msgs, err := ch.Consume(
			q.Name,
			"",
			r.AutoAck,
			r.Exclusive,
			false, // no-local
			false, // no-wait
			nil,
		)

		if err != nil {
			r.Logger.With(zap.Field{
				Key:       "err-msg-queue-" + queueName,
				Type:      zapcore.ReflectType,
				Interface: err,
			}).Info("err queue ")
			return
		}

		for d := range msgs {
			if err := fn(d.Body); err != nil {
				r.Logger.With(zap.Error(err)).Error("consumer handler failed on " + queueName)
			}
			_ = d.Ack(false)
		}
	})

	return nil
}
