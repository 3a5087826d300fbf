package config

import "github.com/urfave/cli/v3"

// Trigger holds the description of the current CI run. The defaults follow
// the variables GitHub Actions sets, so inside a workflow no flag is needed.
type Trigger struct {
	EventName     string
	EventPath     string
	Ref           string
	DefaultBranch string
	RunNumber     int64
	Repository    string
}

// Flags returns CLI flags for trigger configuration
func (c *Trigger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event-name",
			Usage:       "Name of the triggering event (release, workflow_dispatch, push, ...)",
			Destination: &c.EventName,
			Sources:     cli.EnvVars("GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path to the event payload JSON",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Fully-formed ref of the run (refs/heads/..., refs/tags/...)",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "default-branch",
			Usage:       "Name of the repository default branch",
			Destination: &c.DefaultBranch,
			Sources:     cli.EnvVars("RELVER_DEFAULT_BRANCH"),
		},
		&cli.Int64Flag{
			Name:        "run-number",
			Usage:       "Sequence number of the run",
			Value:       1,
			Destination: &c.RunNumber,
			Sources:     cli.EnvVars("GITHUB_RUN_NUMBER"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Repository in owner/name form",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
	}
}
