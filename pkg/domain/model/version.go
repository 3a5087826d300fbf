package model

import (
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
)

// ParseVersion parses a version string, accepting the conventional leading v
// used by release tags.
func ParseVersion(s string) (semver.Version, error) {
	return semver.Parse(strings.TrimPrefix(s, "v"))
}

// NextBase derives the next base version from the latest published release.
// A stable release moves to the next patch. A prerelease is taken as-is: it
// already names the version that ships next. Build metadata never carries
// over. The input value is not modified.
func NextBase(latest semver.Version) semver.Version {
	next := latest
	next.Build = nil
	if len(latest.Pre) > 0 {
		next.Pre = make([]semver.PRVersion, len(latest.Pre))
		copy(next.Pre, latest.Pre)
		return next
	}
	next.Patch++
	return next
}

// CISuffix builds the prerelease identifier that marks a fallback-derived
// version as a CI build. On the default branch the suffix is just ci<run>;
// any other ref contributes a sanitized prefix so builds from different refs
// never produce the same version.
//
// refs/heads/ is stripped, refs/tags/ is stripped and replaced with a tag-
// marker, and every character outside [0-9A-Za-z-] becomes a hyphen.
func CISuffix(ref, defaultBranch string, runNumber int64) string {
	run := "ci" + strconv.FormatInt(runNumber, 10)

	name := ref
	var isTag bool
	if v, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		name = v
	} else if v, ok := strings.CutPrefix(ref, "refs/tags/"); ok {
		name = v
		isTag = true
	}

	if !isTag && (name == "" || name == defaultBranch) {
		return run
	}

	prefix := sanitizeRef(name)
	if isTag {
		prefix = "tag-" + prefix
	}
	return prefix + "-" + run
}

// sanitizeRef maps a ref name onto the alphabet SemVer allows in prerelease
// identifiers.
func sanitizeRef(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// AppendSuffix merges the CI suffix into the prerelease identifiers of v and
// returns the new value. A version without prerelease identifiers gets the
// suffix as its only identifier. A version that already has identifiers keeps
// its dot structure: the suffix is joined onto the last identifier with a
// hyphen, so 1.2.3-beta.1 with suffix ci7 becomes 1.2.3-beta.1-ci7. Build
// metadata is dropped either way.
func AppendSuffix(v semver.Version, suffix string) semver.Version {
	out := v
	out.Build = nil

	if len(v.Pre) == 0 {
		out.Pre = []semver.PRVersion{{VersionStr: suffix}}
		return out
	}

	pre := make([]semver.PRVersion, len(v.Pre))
	copy(pre, v.Pre)
	last := len(pre) - 1
	pre[last] = semver.PRVersion{VersionStr: pre[last].String() + "-" + suffix}
	out.Pre = pre
	return out
}
