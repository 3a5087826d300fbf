package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration for the release lookup
type GitHub struct {
	Token   string `masq:"secret"`
	BaseURL string
	Timeout time.Duration
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "Token for the GitHub API (optional for public repositories)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN", "RELVER_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("GITHUB_API_URL", "RELVER_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "lookup-timeout",
			Usage:       "Timeout for the latest release lookup",
			Value:       10 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("RELVER_LOOKUP_TIMEOUT"),
		},
	}
}
