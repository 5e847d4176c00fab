package events

import (
	"context"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Log     *zap.Logger
	Channel publishChannel
	Queue   string
}

// NewRabbitMQPublisher opens a channel and declares the durable event queue.
func NewRabbitMQPublisher(logger *zap.Logger, rabbitMQConnection *amqp091.Connection, queue string) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Log:     logger,
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (p *rabbitMQPublisher) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	return p.publish(ctx, constvars.EventAssessmentCompleted, event.AssessmentID, event)
}

func (p *rabbitMQPublisher) PublishIridologyAnalyzed(ctx context.Context, event *models.IridologyAnalyzedEvent) error {
	return p.publish(ctx, constvars.EventIridologyAnalyzed, event.AssessmentID, event)
}

func (p *rabbitMQPublisher) publish(ctx context.Context, eventType, assessmentID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"event_type":       eventType,
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Type:         eventType,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.publish error",
			zap.String(constvars.LoggingQueueNameKey, p.Queue),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.publish succeeded",
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
		zap.String("event_type", eventType),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return nil
}
