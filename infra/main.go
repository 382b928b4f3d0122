package infra

import (
	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/infra/produce"
)

type Infra struct {
	Redis       *RedisClient
	Postgres    *PostgresClient
	Logger      *LoggerClient
	RabbitMQ    *RabbitMQClient
	Integration *IntegrationService
	Produce     *produce.Produce
	Minio       *MinioClient
}

func InitInfra(cfg *config.Config) *Infra {
	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	integration := InitIntegrationService(cfg.EnvConfig, logger)
	if integration == nil {
		panic("Failed to initialize Integration service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	// Artifact archiving is optional; generation runs fine without MinIO.
	minio, err := InitMinioClient(cfg.EnvConfig)
	if err != nil {
		logger.Warningf("MinIO disabled: %v", err)
		minio = nil
	}

	return &Infra{
		Redis:       redis,
		Postgres:    postgres,
		Logger:      logger,
		RabbitMQ:    rabbitMQ,
		Integration: integration,
		Produce:     produceService,
		Minio:       minio,
	}
}
