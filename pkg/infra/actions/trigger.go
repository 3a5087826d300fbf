package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/model"
)

// TriggerInput carries the raw values describing the current run, as
// delivered by the GitHub Actions environment or set explicitly via flags.
type TriggerInput struct {
	EventName     string
	EventPath     string
	Ref           string
	DefaultBranch string
	RunNumber     int64
	Repository    string // owner/repo
}

// payload models the slice of the event payload the resolver cares about.
type payload struct {
	Release    *releasePayload            `json:"release"`
	Inputs     map[string]json.RawMessage `json:"inputs"`
	Repository *repositoryPayload         `json:"repository"`
}

type releasePayload struct {
	TagName    string          `json:"tag_name"`
	Prerelease json.RawMessage `json:"prerelease"`
}

type repositoryPayload struct {
	Name          string       `json:"name"`
	DefaultBranch string       `json:"default_branch"`
	Owner         ownerPayload `json:"owner"`
}

type ownerPayload struct {
	Login string `json:"login"`
}

// LoadTrigger assembles the trigger context for the current run. Values in
// the input win over values found in the event payload; the payload fills the
// gaps and contributes the event specific fields.
func LoadTrigger(ctx context.Context, in TriggerInput) (*model.TriggerContext, error) {
	logger := ctxlog.From(ctx)

	trigger := &model.TriggerContext{
		Kind:          model.KindOf(in.EventName),
		EventName:     in.EventName,
		Ref:           in.Ref,
		DefaultBranch: in.DefaultBranch,
		RunNumber:     in.RunNumber,
	}
	if trigger.RunNumber < 1 {
		trigger.RunNumber = 1
	}
	trigger.Owner, trigger.Repo = splitRepository(in.Repository)

	pl, err := readPayload(in.EventPath)
	if err != nil {
		return nil, err
	}

	if pl != nil {
		if pl.Repository != nil {
			if trigger.Owner == "" || trigger.Repo == "" {
				trigger.Owner = pl.Repository.Owner.Login
				trigger.Repo = pl.Repository.Name
			}
			if trigger.DefaultBranch == "" {
				trigger.DefaultBranch = pl.Repository.DefaultBranch
			}
		}

		switch trigger.Kind {
		case model.EventRelease:
			if pl.Release != nil {
				trigger.Release = &model.ReleaseEvent{
					TagName:    pl.Release.TagName,
					Prerelease: pl.Release.Prerelease,
				}
			}
		case model.EventWorkflowDispatch:
			trigger.Dispatch = &model.DispatchInputs{
				Version:     normalizeInput(pl.Inputs["version"]),
				WillPublish: normalizeInput(pl.Inputs["will_publish_packages"]),
			}
		}
	}

	if trigger.DefaultBranch == "" {
		trigger.DefaultBranch = "main"
	}

	logger.Debug("Loaded trigger context",
		"event", trigger.EventName,
		"kind", trigger.Kind,
		"ref", trigger.Ref,
		"owner", trigger.Owner,
		"repo", trigger.Repo,
		"run_number", trigger.RunNumber,
	)

	return trigger, nil
}

func readPayload(path string) (*payload, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload", goerr.V("path", path))
	}

	var pl payload
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, goerr.Wrap(err, "failed to decode event payload", goerr.V("path", path))
	}
	return &pl, nil
}

// normalizeInput renders a workflow_dispatch input value as a string. Actions
// delivers typed boolean inputs as JSON booleans and everything else as
// strings.
func normalizeInput(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func splitRepository(repository string) (owner, repo string) {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok {
		return "", ""
	}
	return owner, repo
}
