package config

import "github.com/urfave/cli/v3"

// Output holds result output configuration
type Output struct {
	JSON bool
	File string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Render the result as JSON on stdout",
			Value:       false,
			Destination: &c.JSON,
			Sources:     cli.EnvVars("RELVER_JSON"),
		},
		&cli.StringFlag{
			Name:        "output-file",
			Usage:       "Step output file to append version and is-for-release to",
			Destination: &c.File,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
	}
}
