package model

import "github.com/blang/semver/v4"

// ReleaseInfo is the answer from a release lookup: the tag of the most
// recently published release.
type ReleaseInfo struct {
	TagName string
}

// Resolution is the outcome of one version resolution.
type Resolution struct {
	Version    semver.Version
	ForRelease bool
	Warnings   []string // non-fatal findings, surfaced by the caller
}

func (r *Resolution) String() string {
	return r.Version.String()
}
