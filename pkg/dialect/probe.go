package dialect

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// VersionProbe reports the major version of a database.
// Implementations may block on I/O and may fail.
type VersionProbe interface {
	MajorVersion(ctx context.Context) (int, error)
}

// ProbeFunc adapts a function to VersionProbe.
type ProbeFunc func(ctx context.Context) (int, error)

// MajorVersion calls f.
func (f ProbeFunc) MajorVersion(ctx context.Context) (int, error) {
	return f(ctx)
}

// FixedVersion is a probe that always reports the same major version.
type FixedVersion int

// MajorVersion returns the fixed version.
func (v FixedVersion) MajorVersion(context.Context) (int, error) {
	return int(v), nil
}

// CachedProbe remembers the first successful answer of another probe.
// Concurrent callers share a single in-flight probe. Failures are not cached.
type CachedProbe struct {
	inner VersionProbe
	group singleflight.Group

	mu    sync.RWMutex
	done  bool
	major int
}

// Cached wraps probe so it is consulted at most once successfully.
func Cached(probe VersionProbe) *CachedProbe {
	return &CachedProbe{inner: probe}
}

// MajorVersion returns the cached version or probes for it.
func (c *CachedProbe) MajorVersion(ctx context.Context) (int, error) {
	c.mu.RLock()
	if c.done {
		defer c.mu.RUnlock()
		return c.major, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("major", func() (any, error) {
		major, err := c.inner.MajorVersion(ctx)
		if err != nil {
			return 0, err
		}
		c.mu.Lock()
		c.major, c.done = major, true
		c.mu.Unlock()
		return major, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Reset forgets the cached version.
func (c *CachedProbe) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = false
	c.major = 0
}
