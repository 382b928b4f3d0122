package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Service struct {
		Name        string
		Port        string
		Environment string
	}
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		Bucket       string
	}
	ExternalService struct {
		MCPServerURL             string
		DomainSchemaServiceURL   string
		BackendServiceURL        string
		DesignFrontendServiceURL string
	}
	Git struct {
		ReposDir      string
		DefaultBranch string
		AuthorName    string
		AuthorEmail   string
	}
	Docker struct {
		Registry         string
		DefaultBaseImage string
	}
	K8s struct {
		DefaultNamespace string
		DefaultReplicas  int
	}
	Telemetry struct {
		OTLPEndpoint string
		ServiceName  string
	}
	CORS struct {
		AllowDomains string
	}
	PrivateKey string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	config.Service.Name = getenv("SERVICE_NAME", "infra-version-control-service")
	config.Service.Port = getenv("SERVICE_PORT", "8086")
	config.Service.Environment = getenv("ENVIRONMENT", "development")

	config.Postgres.Host = getenv("POSTGRES_HOST", "localhost")
	config.Postgres.Database = getenv("POSTGRES_DB", "gigapress")
	config.Postgres.Username = getenv("POSTGRES_USER", "gigapress")
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = getenv("POSTGRES_PORT", "5432")

	config.Redis.Host = getenv("REDIS_HOST", "localhost")
	config.Redis.Port = getenv("REDIS_PORT", "6379")
	config.Redis.Password = getenv("REDIS_PASSWORD", "redis123")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	config.RabbitMQ.Host = getenv("RABBITMQ_HOST", "localhost")
	config.RabbitMQ.Port = getenv("RABBITMQ_PORT", "5672")
	config.RabbitMQ.Username = getenv("RABBITMQ_USER", "guest")
	config.RabbitMQ.Password = getenv("RABBITMQ_PASSWORD", "guest")

	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.Bucket = getenv("MINIO_ARTIFACT_BUCKET", "infra-artifacts")

	config.ExternalService.MCPServerURL = getenv("MCP_SERVER_URL", "http://localhost:8082")
	config.ExternalService.DomainSchemaServiceURL = getenv("DOMAIN_SCHEMA_SERVICE_URL", "http://localhost:8083")
	config.ExternalService.BackendServiceURL = getenv("BACKEND_SERVICE_URL", "http://localhost:8084")
	config.ExternalService.DesignFrontendServiceURL = getenv("DESIGN_FRONTEND_SERVICE_URL", "http://localhost:8085")

	config.Git.ReposDir = getenv("GIT_REPOS_DIR", "repositories")
	config.Git.DefaultBranch = getenv("GIT_DEFAULT_BRANCH", "main")
	config.Git.AuthorName = getenv("GIT_AUTHOR_NAME", "GigaPress Bot")
	config.Git.AuthorEmail = getenv("GIT_AUTHOR_EMAIL", "bot@gigapress.io")

	config.Docker.Registry = getenv("DOCKER_REGISTRY", "localhost:5000")
	config.Docker.DefaultBaseImage = getenv("DOCKER_DEFAULT_BASE_IMAGE", "ubuntu:22.04")

	config.K8s.DefaultNamespace = getenv("K8S_DEFAULT_NAMESPACE", "gigapress")
	if replicas, err := strconv.Atoi(os.Getenv("K8S_DEFAULT_REPLICAS")); err == nil && replicas > 0 {
		config.K8s.DefaultReplicas = replicas
	} else {
		config.K8s.DefaultReplicas = 3
	}

	// The OTLP client expects a bare host, strip the scheme if one is set.
	endpoint := os.Getenv("OTLP_ENDPOINT")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	config.Telemetry.OTLPEndpoint = endpoint
	config.Telemetry.ServiceName = getenv("OTLP_SERVICE_NAME", config.Service.Name)

	config.CORS.AllowDomains = getenv("ALLOWED_DOMAINS", "*")

	config.PrivateKey = os.Getenv("PRIVATE_KEY")

	return &config
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
