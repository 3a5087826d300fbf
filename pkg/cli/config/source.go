package config

import "github.com/urfave/cli/v3"

// Source selects where the latest release is looked up
type Source struct {
	Kind     string
	RepoPath string
}

// Flags returns CLI flags for release source configuration
func (c *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "source",
			Usage:       "Release source: github (releases API) or git (local tags)",
			Value:       "github",
			Destination: &c.Kind,
			Sources:     cli.EnvVars("RELVER_SOURCE"),
		},
		&cli.StringFlag{
			Name:        "repo-path",
			Usage:       "Path to the local repository for the git source",
			Value:       ".",
			Destination: &c.RepoPath,
			Sources:     cli.EnvVars("RELVER_REPO_PATH"),
		},
	}
}
