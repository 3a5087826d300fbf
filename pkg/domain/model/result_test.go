package model_test

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/upstreamci/relver/pkg/domain/model"
)

func TestResolutionString(t *testing.T) {
	res := &model.Resolution{Version: semver.MustParse("1.2.3-beta.1-ci7")}

	if got := res.String(); got != "1.2.3-beta.1-ci7" {
		t.Errorf("Resolution.String() = %q, want %q", got, "1.2.3-beta.1-ci7")
	}
}
