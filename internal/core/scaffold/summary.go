package scaffold

import (
	"fmt"
	"path/filepath"
)

// NextSteps returns the commands a user runs after generation.
func NextSteps(r *Result) []string {
	return []string{
		fmt.Sprintf("cd %s", filepath.Base(r.ProjectRoot)),
		"git init",
		"git add .",
		"git commit -m 'Initial commit'",
		"Create the remote GitHub repository and push",
	}
}

// Highlights lists what the generated skeleton contains.
func Highlights() []string {
	return []string{
		"FastAPI backend layout",
		"WeChat mini-program frontend",
		"Docker configuration",
		"GitHub Actions CI",
		"Development and test environment",
		"Project documentation structure",
	}
}
