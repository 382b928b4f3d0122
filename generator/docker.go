// Package generator renders infrastructure artifacts from typed
// configurations. Every function is a pure mapping with no I/O; the only
// failures are marshalling errors on malformed input.
package generator

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kngsnwn/gigapress/entity"
)

// FallbackBaseImage is the documented base image for unrecognized frameworks.
const FallbackBaseImage = "ubuntu:22.04"

var baseImages = map[string]string{
	"react":       "node:18-alpine",
	"vue":         "node:18-alpine",
	"angular":     "node:18-alpine",
	"express":     "node:18-alpine",
	"spring-boot": "openjdk:17-jdk-slim",
	"django":      "python:3.10-slim",
	"flask":       "python:3.10-slim",
	"go":          "golang:1.20-alpine",
	"rust":        "rust:1.70-slim",
}

// BaseImage returns the base container image for a framework, falling back to
// FallbackBaseImage when the framework is unrecognized.
func BaseImage(framework string) string {
	if image, ok := baseImages[framework]; ok {
		return image
	}
	return FallbackBaseImage
}

// BuildCommands returns the Dockerfile build command sequence for a
// framework/service-type pair. Unknown combinations fall back to the generic
// "COPY . ." command.
func BuildCommands(framework, serviceType string) []string {
	switch serviceType {
	case "frontend":
		switch framework {
		case "react", "vue", "angular":
			return []string{
				"COPY package*.json ./",
				"RUN npm ci --only=production",
				"COPY . .",
				"RUN npm run build",
			}
		}
	case "backend":
		switch framework {
		case "express":
			return []string{
				"COPY package*.json ./",
				"RUN npm ci --only=production",
				"COPY . .",
			}
		case "spring-boot":
			return []string{
				"COPY build/libs/*.jar app.jar",
			}
		case "django", "flask":
			return []string{
				"COPY requirements.txt .",
				"RUN pip install --no-cache-dir -r requirements.txt",
				"COPY . .",
			}
		}
	}
	return []string{"COPY . ."}
}

// Dockerfile renders a Dockerfile body for the given image configuration.
func Dockerfile(cfg entity.DockerImageConfig) string {
	var b strings.Builder

	base := cfg.BaseImage
	if base == "" {
		base = FallbackBaseImage
	}
	fmt.Fprintf(&b, "FROM %s\n\n", base)

	workdir := cfg.Workdir
	if workdir == "" {
		workdir = "/app"
	}
	fmt.Fprintf(&b, "WORKDIR %s\n\n", workdir)

	for _, command := range cfg.Commands {
		b.WriteString(command)
		b.WriteByte('\n')
	}
	if len(cfg.Commands) > 0 {
		b.WriteByte('\n')
	}

	for _, key := range sortedKeys(cfg.Environment) {
		fmt.Fprintf(&b, "ENV %s=%s\n", key, cfg.Environment[key])
	}
	if len(cfg.Environment) > 0 {
		b.WriteByte('\n')
	}

	for _, key := range sortedKeys(cfg.Labels) {
		fmt.Fprintf(&b, "LABEL %s=%q\n", key, cfg.Labels[key])
	}
	if len(cfg.Labels) > 0 {
		b.WriteByte('\n')
	}

	for _, port := range cfg.ExposedPorts {
		fmt.Fprintf(&b, "EXPOSE %d\n", port)
	}
	if len(cfg.ExposedPorts) > 0 {
		b.WriteByte('\n')
	}

	if len(cfg.Entrypoint) > 0 {
		quoted := make([]string, len(cfg.Entrypoint))
		for i, part := range cfg.Entrypoint {
			quoted[i] = fmt.Sprintf("%q", part)
		}
		fmt.Fprintf(&b, "ENTRYPOINT [%s]\n", strings.Join(quoted, ", "))
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

type composeService struct {
	Image       string            `yaml:"image,omitempty"`
	Build       map[string]any    `yaml:"build,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Networks    []string          `yaml:"networks,omitempty"`
	Healthcheck map[string]any    `yaml:"healthcheck,omitempty"`
}

type composeFile struct {
	Version  string                    `yaml:"version"`
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]map[string]any `yaml:"volumes,omitempty"`
	Networks map[string]map[string]any `yaml:"networks,omitempty"`
}

// DockerCompose renders a docker-compose.yml body.
func DockerCompose(cfg entity.DockerComposeConfig) (string, error) {
	version := cfg.Version
	if version == "" {
		version = "3.8"
	}

	out := composeFile{
		Version:  version,
		Services: map[string]composeService{},
		Volumes:  cfg.Volumes,
		Networks: cfg.Networks,
	}
	for name, service := range cfg.Services {
		out.Services[name] = composeService{
			Image:       service.Image,
			Build:       service.Build,
			Ports:       service.Ports,
			Environment: service.Environment,
			Volumes:     service.Volumes,
			DependsOn:   service.DependsOn,
			Networks:    service.Networks,
			Healthcheck: service.Healthcheck,
		}
	}

	body, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to render docker-compose.yml: %w", err)
	}
	return string(body), nil
}

var dockerignoreCommon = []string{
	".git",
	".gitignore",
	"Dockerfile",
	".dockerignore",
	"README.md",
}

var dockerignoreByFramework = map[string][]string{
	"react":       {"node_modules", "build", "coverage", "npm-debug.log"},
	"vue":         {"node_modules", "dist", "coverage", "npm-debug.log"},
	"angular":     {"node_modules", "dist", "coverage", "npm-debug.log"},
	"express":     {"node_modules", "npm-debug.log", ".env"},
	"spring-boot": {"build", ".gradle", "*.iml"},
	"django":      {"__pycache__", "*.pyc", ".venv", "db.sqlite3"},
	"flask":       {"__pycache__", "*.pyc", ".venv", "instance"},
	"go":          {"vendor", "bin", "*.test"},
}

// Dockerignore renders a .dockerignore body for a framework; unrecognized
// frameworks get the common entries only.
func Dockerignore(framework string) string {
	entries := append([]string{}, dockerignoreCommon...)
	entries = append(entries, dockerignoreByFramework[framework]...)
	return strings.Join(entries, "\n") + "\n"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
