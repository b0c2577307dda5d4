package solar

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// GeometryCache memoizes ObserverGeometry results keyed by instant.
// It is safe for concurrent use. Useful when the same observation times
// recur, e.g. when warping a sequence of frames against one base date.
type GeometryCache struct {
	cache *lru.Cache
}

// NewGeometryCache returns a cache holding up to size entries.
func NewGeometryCache(size int) (*GeometryCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &GeometryCache{cache: c}, nil
}

// Geometry returns the observer geometry at t, computing it on a miss.
// The key has nanosecond resolution, matching Geometry determinism.
func (gc *GeometryCache) Geometry(t time.Time) Geometry {
	key := t.UTC().UnixNano()
	if v, ok := gc.cache.Get(key); ok {
		return v.(Geometry)
	}
	g := ObserverGeometry(t)
	gc.cache.Add(key, g)
	return g
}
