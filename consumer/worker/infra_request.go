package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kngsnwn/gigapress/infra"
	"github.com/kngsnwn/gigapress/infra/produce"
	"github.com/kngsnwn/gigapress/orchestrator"
)

type InfraRequestConsumer struct {
	channel      *amqp.Channel
	infra        *infra.Infra
	orchestrator *orchestrator.Orchestrator
}

func NewInfraRequestConsumer(channel *amqp.Channel, infra *infra.Infra, orch *orchestrator.Orchestrator) *InfraRequestConsumer {
	return &InfraRequestConsumer{
		channel:      channel,
		infra:        infra,
		orchestrator: orch,
	}
}

func (c *InfraRequestConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.InfraRequestQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register infra request consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Infra Consumer] Started listening for generation requests on queue: %s", produce.InfraRequestQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Infra Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Infra Consumer] Channel closed")
					return
				}
				c.handleGenerationRequest(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *InfraRequestConsumer) handleGenerationRequest(ctx context.Context, msg amqp.Delivery) {
	c.infra.Logger.InfoWithContextf(ctx, "[Infra Consumer] Received message: %s", string(msg.Body))

	var payload produce.InfraRequestMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Infra Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	if payload.ProjectID == "" {
		c.infra.Logger.WarningWithContextf(ctx, "[Infra Consumer] Dropping message with empty project ID")
		_ = msg.Nack(false, false)
		return
	}

	c.orchestrator.StartGeneration(payload.ProjectID, payload.CloudProvider, payload.Region)
	c.infra.Logger.InfoWithContextf(ctx, "[Infra Consumer] Started generation for project ID: %s", payload.ProjectID)
	_ = msg.Ack(false)
}
