package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/model"
	"github.com/upstreamci/relver/pkg/domain/types"
)

// classification is the result of inspecting the trigger. A nil explicit
// version sends the resolution down the fallback path.
type classification struct {
	explicit   *semver.Version
	forRelease bool
	warnings   []string
}

func (uc *Resolver) classify(ctx context.Context, trigger *model.TriggerContext) (*classification, error) {
	logger := ctxlog.From(ctx)

	switch trigger.Kind {
	case model.EventRelease:
		return classifyRelease(trigger)

	case model.EventWorkflowDispatch:
		return classifyDispatch(trigger)

	case model.EventPush, model.EventPullRequest:
		return &classification{}, nil

	default:
		logger.Warn("Unrecognized trigger event, resolving as a plain CI build",
			"event", trigger.EventName,
		)
		warning := fmt.Sprintf("unrecognized trigger event %q, resolved as a plain CI build", trigger.EventName)
		return &classification{warnings: []string{warning}}, nil
	}
}

// classifyRelease handles release events. The release tag is the version and
// the run is always bound for release.
func classifyRelease(trigger *model.TriggerContext) (*classification, error) {
	ev := trigger.Release
	if ev == nil || ev.TagName == "" {
		return nil, goerr.New("release event carries no tag name",
			goerr.T(types.ErrTagMissingVersion))
	}

	v, err := model.ParseVersion(ev.TagName)
	if err != nil {
		return nil, goerr.Wrap(err, "release tag is not a semantic version",
			goerr.T(types.ErrTagInvalidVersion),
			goerr.V("tag", ev.TagName))
	}

	var prerelease bool
	switch string(bytes.TrimSpace(ev.Prerelease)) {
	case "true":
		prerelease = true
	case "false":
		prerelease = false
	default:
		return nil, goerr.New("release prerelease flag is missing or not a boolean",
			goerr.T(types.ErrTagInvalidReleaseMetadata),
			goerr.V("prerelease", string(ev.Prerelease)))
	}

	if !prerelease && len(v.Pre) > 0 {
		return nil, goerr.New("release is marked stable but its tag has prerelease identifiers",
			goerr.T(types.ErrTagPrereleaseMismatch),
			goerr.V("tag", ev.TagName))
	}

	return &classification{explicit: &v, forRelease: true}, nil
}

// classifyDispatch handles workflow_dispatch events. An explicit version
// input wins; a publishing run without one is refused.
func classifyDispatch(trigger *model.TriggerContext) (*classification, error) {
	var in model.DispatchInputs
	if trigger.Dispatch != nil {
		in = *trigger.Dispatch
	}

	forRelease := in.WillPublish == "true"

	if in.Version == "" {
		if forRelease {
			return nil, goerr.New("publishing dispatch runs must name an explicit version",
				goerr.T(types.ErrTagExplicitVersionRequired))
		}
		return &classification{}, nil
	}

	v, err := model.ParseVersion(in.Version)
	if err != nil {
		return nil, goerr.Wrap(err, "version input is not a semantic version",
			goerr.T(types.ErrTagInvalidVersion),
			goerr.V("version", in.Version))
	}

	return &classification{explicit: &v, forRelease: forRelease}, nil
}
