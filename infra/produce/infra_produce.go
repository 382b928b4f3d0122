package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	InfraRequestQueue      = "infra.requests"
	InfraRequestRoutingKey = "infra.requests"
)

type InfraRequestService struct {
	channel *amqp.Channel
}

// InfraRequestMessage asks the consumer to run a full generation for a
// project. It mirrors the orchestration HTTP request body.
type InfraRequestMessage struct {
	ProjectID     string `json:"project_id"`
	CloudProvider string `json:"cloud_provider,omitempty"`
	Region        string `json:"region,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

func InitInfraRequestService(channel *amqp.Channel) *InfraRequestService {
	service := &InfraRequestService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		InfraEventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Infra exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		InfraRequestQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Infra request queue: " + err.Error())
	}

	err = channel.QueueBind(
		InfraRequestQueue,
		InfraRequestRoutingKey,
		InfraEventsExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Infra request queue: " + err.Error())
	}

	return service
}

func (s *InfraRequestService) PublishGenerationRequest(ctx context.Context, projectID, cloudProvider, region string) error {
	message := InfraRequestMessage{
		ProjectID:     projectID,
		CloudProvider: cloudProvider,
		Region:        region,
		Timestamp:     time.Now().Unix(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		InfraEventsExchange,
		InfraRequestRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}
