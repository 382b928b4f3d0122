package generator

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kngsnwn/gigapress/entity"
)

type githubWorkflow struct {
	Name string            `yaml:"name"`
	On   map[string]any    `yaml:"on"`
	Env  map[string]string `yaml:"env,omitempty"`
	Jobs map[string]any    `yaml:"jobs"`
}

// GitHubActions renders a GitHub Actions workflow body.
func GitHubActions(cfg entity.GitHubActionsConfig) (string, error) {
	body, err := yaml.Marshal(githubWorkflow{
		Name: cfg.Name,
		On:   cfg.Triggers,
		Env:  cfg.Env,
		Jobs: cfg.Jobs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render GitHub Actions workflow: %w", err)
	}
	return string(body), nil
}

// JenkinsPipeline renders a declarative Jenkinsfile.
func JenkinsPipeline(cfg entity.JenkinsConfig) string {
	agent := cfg.Agent
	if agent == "" {
		agent = "any"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Pipeline: %s\n", cfg.PipelineName)
	b.WriteString("pipeline {\n")
	fmt.Fprintf(&b, "    agent %s\n", agent)

	if len(cfg.Environment) > 0 {
		b.WriteString("    environment {\n")
		for _, key := range sortedKeys(cfg.Environment) {
			fmt.Fprintf(&b, "        %s = '%s'\n", key, cfg.Environment[key])
		}
		b.WriteString("    }\n")
	}

	if len(cfg.Options) > 0 {
		b.WriteString("    options {\n")
		for _, option := range cfg.Options {
			fmt.Fprintf(&b, "        %s\n", option)
		}
		b.WriteString("    }\n")
	}

	b.WriteString("    stages {\n")
	for _, stage := range cfg.Stages {
		fmt.Fprintf(&b, "        stage('%s') {\n", stage.Name)
		b.WriteString("            steps {\n")
		for _, step := range stage.Steps {
			fmt.Fprintf(&b, "                sh '%s'\n", step)
		}
		b.WriteString("            }\n")
		b.WriteString("        }\n")
	}
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String()
}

// GitLabCI renders a .gitlab-ci.yml body.
func GitLabCI(cfg entity.GitLabCIConfig) (string, error) {
	out := map[string]any{
		"stages": cfg.Stages,
	}
	if len(cfg.Variables) > 0 {
		out["variables"] = cfg.Variables
	}
	for name, job := range cfg.Jobs {
		out[name] = job
	}

	body, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to render .gitlab-ci.yml: %w", err)
	}
	return string(body), nil
}

// BuildWorkflow returns the GitHub Actions jobs block for a project
// type/framework pair, falling back to a placeholder build job.
func BuildWorkflow(projectType, framework string) map[string]any {
	workflows := map[string]map[string]func() map[string]any{
		"frontend": {
			"react":   reactWorkflow,
			"vue":     vueWorkflow,
			"angular": angularWorkflow,
		},
		"backend": {
			"express":     nodeWorkflow,
			"spring-boot": javaWorkflow,
			"django":      pythonWorkflow,
		},
	}

	if byFramework, ok := workflows[projectType]; ok {
		if build, ok := byFramework[framework]; ok {
			return build()
		}
	}
	return defaultWorkflow()
}

func nodeSteps(finalSteps ...map[string]any) []map[string]any {
	steps := []map[string]any{
		{"uses": "actions/checkout@v3"},
		{"uses": "actions/setup-node@v3", "with": map[string]any{"node-version": "18"}},
		{"run": "npm ci"},
	}
	return append(steps, finalSteps...)
}

func buildJob(steps []map[string]any) map[string]any {
	return map[string]any{
		"build": map[string]any{
			"runs-on": "ubuntu-latest",
			"steps":   steps,
		},
	}
}

func reactWorkflow() map[string]any {
	return buildJob(nodeSteps(
		map[string]any{"run": "npm run build"},
		map[string]any{"run": "npm test"},
	))
}

func vueWorkflow() map[string]any {
	return buildJob(nodeSteps(
		map[string]any{"run": "npm run build"},
		map[string]any{"run": "npm run test:unit"},
	))
}

func angularWorkflow() map[string]any {
	return buildJob(nodeSteps(
		map[string]any{"run": "npm run build"},
		map[string]any{"run": "npm run test -- --watch=false"},
	))
}

func nodeWorkflow() map[string]any {
	return buildJob(nodeSteps(
		map[string]any{"run": "npm test"},
		map[string]any{"run": "npm run lint"},
	))
}

func javaWorkflow() map[string]any {
	return buildJob([]map[string]any{
		{"uses": "actions/checkout@v3"},
		{"uses": "actions/setup-java@v3", "with": map[string]any{"java-version": "17", "distribution": "temurin"}},
		{"run": "./gradlew build"},
		{"run": "./gradlew test"},
	})
}

func pythonWorkflow() map[string]any {
	return buildJob([]map[string]any{
		{"uses": "actions/checkout@v3"},
		{"uses": "actions/setup-python@v4", "with": map[string]any{"python-version": "3.10"}},
		{"run": "pip install -r requirements.txt"},
		{"run": "python -m pytest"},
		{"run": "python -m flake8"},
	})
}

func defaultWorkflow() map[string]any {
	return buildJob([]map[string]any{
		{"uses": "actions/checkout@v3"},
		{"run": "echo 'Add build steps here'"},
	})
}
