package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// defaultFileNames are probed in the working directory when no config file is
// named explicitly.
var defaultFileNames = []string{"relver.toml", "relver.yaml", "relver.yml"}

// FileConfig are the settings a project can pin in its relver.toml or
// relver.yaml. File values apply only where the corresponding flag was not
// set on the command line or through the environment.
type FileConfig struct {
	DefaultBranch string `toml:"default_branch" yaml:"default_branch"`
	Source        string `toml:"source" yaml:"source"`
	RepoPath      string `toml:"repo_path" yaml:"repo_path"`
	GitHubAPIURL  string `toml:"github_api_url" yaml:"github_api_url"`
	JSON          bool   `toml:"json" yaml:"json"`
}

// LoadFile reads and decodes a config file by its extension.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var fc FileConfig
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, goerr.New("unsupported config file extension", goerr.V("path", path))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", path))
	}

	return &fc, nil
}

// ApplyFile loads the config file at path, or the first default file found
// when path is empty, and fills in settings whose flags were left unset. A
// missing default file is fine; a missing explicit file is an error.
func ApplyFile(cmd *cli.Command, path string, trigger *Trigger, github *GitHub, source *Source, output *Output) error {
	if path == "" {
		for _, name := range defaultFileNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return nil
		}
	}

	fc, err := LoadFile(path)
	if err != nil {
		return err
	}

	if !cmd.IsSet("default-branch") && fc.DefaultBranch != "" {
		trigger.DefaultBranch = fc.DefaultBranch
	}
	if !cmd.IsSet("source") && fc.Source != "" {
		source.Kind = fc.Source
	}
	if !cmd.IsSet("repo-path") && fc.RepoPath != "" {
		source.RepoPath = fc.RepoPath
	}
	if !cmd.IsSet("github-api-url") && fc.GitHubAPIURL != "" {
		github.BaseURL = fc.GitHubAPIURL
	}
	if !cmd.IsSet("json") && fc.JSON {
		output.JSON = fc.JSON
	}

	return nil
}
