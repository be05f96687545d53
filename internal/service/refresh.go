package service

import "sync/atomic"

// RefreshSignal is a monotonic counter bumped for every consumed processed
// event. Gallery clients poll it and refetch when the version changes.
type RefreshSignal struct {
	version atomic.Int64
}

func (r *RefreshSignal) Bump() int64 {
	return r.version.Add(1)
}

func (r *RefreshSignal) Version() int64 {
	return r.version.Load()
}
