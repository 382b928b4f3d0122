package vcs

import (
	"fmt"
	"strings"

	"github.com/kngsnwn/gigapress/entity"
)

var gitignoreTemplates = map[string]string{
	"node": `node_modules/
dist/
build/
coverage/
.env
.env.local
npm-debug.log*
yarn-error.log*
.DS_Store
`,
	"java": `build/
.gradle/
*.class
*.jar
*.war
.idea/
*.iml
.DS_Store
`,
	"python": `__pycache__/
*.py[cod]
.venv/
venv/
.env
*.egg-info/
.pytest_cache/
.DS_Store
`,
	"go": `bin/
vendor/
*.test
*.out
.env
.DS_Store
`,
}

const gitignoreDefault = `.env
.DS_Store
*.log
`

// GitignoreTemplate returns the .gitignore body for a template name,
// falling back to a minimal default for unknown names.
func GitignoreTemplate(name string) string {
	if body, ok := gitignoreTemplates[name]; ok {
		return body
	}
	return gitignoreDefault
}

// Readme renders a project README.md.
func Readme(content entity.ReadmeContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", content.ProjectName)
	if content.Description != "" {
		b.WriteString(content.Description)
		b.WriteString("\n\n")
	}
	b.WriteString("## Getting Started\n\n")
	b.WriteString("This repository was generated by GigaPress. ")
	b.WriteString("Infrastructure configurations live at the repository root.\n\n")
	b.WriteString("## Project Structure\n\n")
	b.WriteString("```\n")
	b.WriteString(".\n")
	b.WriteString("├── Dockerfile\n")
	b.WriteString("├── docker-compose.yml\n")
	b.WriteString("├── k8s/\n")
	b.WriteString("└── .github/workflows/\n")
	b.WriteString("```\n")
	if content.License != "" {
		fmt.Fprintf(&b, "\n## License\n\n%s\n", content.License)
	}
	return b.String()
}
