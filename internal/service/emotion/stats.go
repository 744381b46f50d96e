package emotion

import (
	"errors"
	"sync/atomic"
)

// Stats counts how remote calls were resolved.
type Stats struct {
	remote      atomic.Int64
	unavailable atomic.Int64
	failed      atomic.Int64
	unparseable atomic.Int64
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Remote      int64 `json:"remote"`
	Unavailable int64 `json:"unavailable"`
	Failed      int64 `json:"failed"`
	Unparseable int64 `json:"unparseable"`
}

// Record counts one outcome; a nil error is a remote success.
func (s *Stats) Record(err error) {
	switch {
	case err == nil:
		s.remote.Add(1)
	case errors.Is(err, ErrRemoteUnavailable):
		s.unavailable.Add(1)
	case errors.Is(err, ErrRemoteResponseUnparseable):
		s.unparseable.Add(1)
	default:
		s.failed.Add(1)
	}
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Remote:      s.remote.Load(),
		Unavailable: s.unavailable.Load(),
		Failed:      s.failed.Load(),
		Unparseable: s.unparseable.Load(),
	}
}
