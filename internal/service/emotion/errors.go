package emotion

import "errors"

// Remote failures. All of them are absorbed by falling back to the local heuristic.
var (
	ErrRemoteUnavailable         = errors.New("remote completion unavailable")
	ErrRemoteCallFailed          = errors.New("remote completion failed")
	ErrRemoteResponseUnparseable = errors.New("remote response unparseable")
)
