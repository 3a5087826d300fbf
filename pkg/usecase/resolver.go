package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/domain/model"
)

type Resolver struct {
	source interfaces.ReleaseSource
}

// NewResolver creates a new instance of Resolver
func NewResolver(source interfaces.ReleaseSource) *Resolver {
	return &Resolver{
		source: source,
	}
}

// Resolve computes the version for one CI run. It classifies the trigger,
// falls back to the latest published release when the trigger carries no
// version, marks fallback versions with the CI suffix, and finalizes the
// result. The release source is consulted only on the fallback path.
func (uc *Resolver) Resolve(ctx context.Context, trigger *model.TriggerContext) (*model.Resolution, error) {
	logger := ctxlog.From(ctx)

	logger.Debug("Classifying trigger",
		"event", trigger.EventName,
		"ref", trigger.Ref,
		"run_number", trigger.RunNumber,
	)

	cls, err := uc.classify(ctx, trigger)
	if err != nil {
		return nil, err
	}

	res := &model.Resolution{
		ForRelease: cls.forRelease,
		Warnings:   cls.warnings,
	}

	if cls.explicit != nil {
		res.Version = *cls.explicit
	} else {
		base, err := uc.fallbackBase(ctx, trigger, cls.forRelease)
		if err != nil {
			return nil, err
		}

		suffix := model.CISuffix(trigger.Ref, trigger.DefaultBranch, trigger.RunNumber)
		res.Version = model.AppendSuffix(base, suffix)

		logger.Debug("Applied CI suffix",
			"base", base.String(),
			"suffix", suffix,
		)
	}

	if err := uc.finalize(ctx, res); err != nil {
		return nil, err
	}

	logger.Info("Resolved version",
		"version", res.Version.String(),
		"for_release", res.ForRelease,
	)

	return res, nil
}
