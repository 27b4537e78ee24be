package datatype

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Version slots of a cache key.
const (
	anyVersion     = ""  // result does not depend on the version
	noProbe        = "-" // dialect has no probe
	unknownVersion = "?" // probe failed
)

type cacheKey struct {
	kind    core.DialectKind
	version string
	spec    string
}

type cacheEntry struct {
	out core.DialectType
	// versioned marks an anyVersion entry whose results are stored per version
	versioned bool
}

// CachingResolver memoizes resolutions by spec and dialect kind. Results of
// rules that consult the database version are additionally keyed by the
// probed version; the probe is only consulted when such a rule ran before
// or runs now. Only successful resolutions are cached.
type CachingResolver struct {
	inner TypeResolver
	cache *lru.Cache[cacheKey, cacheEntry]
}

// NewCachingResolver wraps inner with an LRU cache holding up to size entries.
func NewCachingResolver(inner TypeResolver, size int) (*CachingResolver, error) {
	cache, err := lru.New[cacheKey, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolution cache: %w", err)
	}
	return &CachingResolver{inner: inner, cache: cache}, nil
}

// Resolve returns a cached result or delegates to the wrapped resolver.
// The dialect's probe is consulted at most once per call.
func (c *CachingResolver) Resolve(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) (core.DialectType, error) {
	key := cacheKey{kind: d.Kind, version: anyVersion, spec: spec.Key()}
	var probe *callProbe
	if d.Probe == nil {
		key.version = noProbe
	} else {
		probe = &callProbe{inner: d.Probe}
		d.Probe = probe
	}

	if e, ok := c.cache.Get(key); ok {
		if !e.versioned {
			return copyType(e.out), nil
		}
		if e, ok := c.cache.Get(probe.versionKey(ctx, key)); ok {
			return copyType(e.out), nil
		}
	}

	out, err := c.inner.Resolve(ctx, spec, d)
	if err != nil {
		return core.DialectType{}, err
	}
	if probe != nil && probe.consulted() {
		c.cache.Add(key, cacheEntry{versioned: true})
		key = probe.versionKey(ctx, key)
	}
	c.cache.Add(key, cacheEntry{out: out})
	return copyType(out), nil
}

// Len returns the number of cached entries.
func (c *CachingResolver) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *CachingResolver) Purge() {
	c.cache.Purge()
}

func copyType(t core.DialectType) core.DialectType {
	return core.NewDialectType(t.Name, t.Params, t.Modifiers)
}

// callProbe consults its probe at most once and remembers the outcome,
// failures included, for the rest of one Resolve call.
type callProbe struct {
	inner dialect.VersionProbe
	once  sync.Once
	used  atomic.Bool
	major int
	err   error
}

func (p *callProbe) MajorVersion(ctx context.Context) (int, error) {
	p.once.Do(func() {
		p.used.Store(true)
		p.major, p.err = p.inner.MajorVersion(ctx)
	})
	return p.major, p.err
}

func (p *callProbe) consulted() bool {
	return p.used.Load()
}

// versionKey returns key with its version slot set from the probe.
func (p *callProbe) versionKey(ctx context.Context, key cacheKey) cacheKey {
	key.version = unknownVersion
	if v, err := p.MajorVersion(ctx); err == nil {
		key.version = strconv.Itoa(v)
	}
	return key
}
