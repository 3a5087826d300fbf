package model

import "encoding/json"

// EventKind represents the kind of CI event that triggered the run
type EventKind string

const (
	EventRelease          EventKind = "release"
	EventWorkflowDispatch EventKind = "workflow_dispatch"
	EventPush             EventKind = "push"
	EventPullRequest      EventKind = "pull_request"
	EventUnknown          EventKind = "unknown"
)

// KindOf maps an event name to its EventKind. Names outside the known set
// map to EventUnknown; the raw name stays available on the TriggerContext.
func KindOf(eventName string) EventKind {
	switch EventKind(eventName) {
	case EventRelease, EventWorkflowDispatch, EventPush, EventPullRequest:
		return EventKind(eventName)
	default:
		return EventUnknown
	}
}

// ReleaseEvent carries the release payload fields the resolver inspects.
// Prerelease stays raw JSON so that a non-boolean value can be rejected
// instead of silently coerced.
type ReleaseEvent struct {
	TagName    string
	Prerelease json.RawMessage
}

// DispatchInputs carries the workflow_dispatch inputs. An empty string means
// the input was not provided. WillPublish holds the normalized string form of
// the will_publish_packages input, so a typed boolean input and the literal
// string "true" compare the same.
type DispatchInputs struct {
	Version     string
	WillPublish string
}

// TriggerContext describes one CI invocation. It is assembled once by the
// trigger provider and read-only afterwards.
type TriggerContext struct {
	Kind          EventKind
	EventName     string // raw event name, kept even when Kind is EventUnknown
	Ref           string // fully-formed ref such as refs/heads/main
	DefaultBranch string
	RunNumber     int64
	Owner         string
	Repo          string

	Release  *ReleaseEvent   // set for release events
	Dispatch *DispatchInputs // set for workflow_dispatch events
}
