package notifier

import (
	"context"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type submissionPublisher struct {
	mu      sync.Mutex
	Channel channelPublisher
	Queue   string
	Metrics *metrics.WebsiteMetrics
	Log     *zap.Logger
}

// NewSubmissionPublisher publishes accepted form submissions to queue. With no
// broker connection the returned publisher discards events.
func NewSubmissionPublisher(conn *amqp091.Connection, queue string, websiteMetrics *metrics.WebsiteMetrics, logger *zap.Logger) (contracts.SubmissionPublisher, error) {
	if conn == nil {
		return noopPublisher{}, nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &submissionPublisher{
		Channel: channel,
		Queue:   queue,
		Metrics: websiteMetrics,
		Log:     logger,
	}, nil
}

func (p *submissionPublisher) PublishSubmission(ctx context.Context, event *requests.SubmissionEvent) error {
	p.Log.Info("submissionPublisher.PublishSubmission called",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingFormKey, event.Form),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		Priority:      0,
		Headers:       headers,
		CorrelationId: event.RequestID,
		Type:          event.Form,
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	p.Metrics.ObserveSubmissionEvent(event.Form, err == nil)
	if err != nil {
		p.Log.Error("submissionPublisher.PublishSubmission error publishing message",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("submissionPublisher.PublishSubmission succeeded",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishSubmission(ctx context.Context, event *requests.SubmissionEvent) error {
	return nil
}
