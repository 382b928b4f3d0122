package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	InfraEventsExchange = "infra.events"

	GitEventQueue      = "git.events"
	GitEventRoutingKey = "git.events"

	EventRepoInitialized = "repository_initialized"
	EventCommitCreated   = "commit_created"
)

type GitEventService struct {
	channel *amqp.Channel
}

type GitEventMessage struct {
	Event     string `json:"event"`
	ProjectID string `json:"project_id"`
	RepoName  string `json:"repo_name,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func InitGitEventService(channel *amqp.Channel) *GitEventService {
	service := &GitEventService{
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
		panic("Failed to declare Git exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		GitEventQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Git event queue: " + err.Error())
	}

	err = channel.QueueBind(
		GitEventQueue,
		GitEventRoutingKey,
		InfraEventsExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Git event queue: " + err.Error())
	}

	return service
}

func (s *GitEventService) publish(ctx context.Context, message GitEventMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		InfraEventsExchange,
		GitEventRoutingKey,
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

func (s *GitEventService) PublishRepositoryInitialized(ctx context.Context, projectID, repoName string) error {
	return s.publish(ctx, GitEventMessage{
		Event:     EventRepoInitialized,
		ProjectID: projectID,
		RepoName:  repoName,
		Timestamp: time.Now().Unix(),
	})
}

func (s *GitEventService) PublishCommitCreated(ctx context.Context, projectID, message string) error {
	return s.publish(ctx, GitEventMessage{
		Event:     EventCommitCreated,
		ProjectID: projectID,
		Message:   message,
		Timestamp: time.Now().Unix(),
	})
}
