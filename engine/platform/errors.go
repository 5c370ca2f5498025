package platform

import "errors"

var (
	// ErrSurfaceUnavailable reports a transient surface failure (lost, outdated or timed out).
	// The frame is skipped and the surface is reconfigured at its current size.
	ErrSurfaceUnavailable = errors.New("platform: surface unavailable")

	// ErrOutOfMemory reports that the GPU ran out of memory. The frame loop stops.
	ErrOutOfMemory = errors.New("platform: out of memory")

	// ErrNotReady is returned by operations that need a constructed backend.
	ErrNotReady = errors.New("platform: backend not ready")
)
