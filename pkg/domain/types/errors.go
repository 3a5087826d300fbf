package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify the failure modes of version resolution. Every fatal
// error carries exactly one tag so CI logs and error reports stay searchable.
var (
	// ErrTagMissingVersion: a trigger that must carry a version did not.
	ErrTagMissingVersion = goerr.NewTag("missing_version")

	// ErrTagInvalidVersion: a supplied version or release tag is not a
	// semantic version.
	ErrTagInvalidVersion = goerr.NewTag("invalid_version")

	// ErrTagInvalidReleaseMetadata: the release payload is malformed, such as
	// a prerelease flag that is not a boolean.
	ErrTagInvalidReleaseMetadata = goerr.NewTag("invalid_release_metadata")

	// ErrTagPrereleaseMismatch: a release marked stable has a prerelease
	// shaped tag.
	ErrTagPrereleaseMismatch = goerr.NewTag("prerelease_mismatch")

	// ErrTagExplicitVersionRequired: a publishing run was started without an
	// explicit version.
	ErrTagExplicitVersionRequired = goerr.NewTag("explicit_version_required")

	// ErrTagReleaseLookupFailed: the latest release could not be determined
	// for a reason other than the repository having no releases.
	ErrTagReleaseLookupFailed = goerr.NewTag("release_lookup_failed")

	// ErrTagUnexpectedBuildMetadata: a version bound for release carries
	// build metadata.
	ErrTagUnexpectedBuildMetadata = goerr.NewTag("unexpected_build_metadata")

	// ErrTagInternalInvariant: the resolver reached a state its own rules
	// forbid.
	ErrTagInternalInvariant = goerr.NewTag("internal_invariant")
)
