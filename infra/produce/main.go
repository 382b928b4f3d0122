package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	GitEvents     *GitEventService
	InfraRequests *InfraRequestService
}

func InitProduce(channel *amqp.Channel) *Produce {
	gitEvents := InitGitEventService(channel)
	if gitEvents == nil {
		panic("Failed to initialize Git event service")
	}

	infraRequests := InitInfraRequestService(channel)
	if infraRequests == nil {
		panic("Failed to initialize Infra request service")
	}

	return &Produce{
		GitEvents:     gitEvents,
		InfraRequests: infraRequests,
	}
}
