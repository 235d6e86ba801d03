package scan

import (
	"bytes"
	"context"
	"encoding/binary"
	"slices"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xxxsen/ahoscan/internal/automaton"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// CacheOptions controls the compiled automaton cache.
type CacheOptions struct {
	Size int
}

var globalCache atomic.Pointer[compileCache]

func init() {
	ConfigureCache(CacheOptions{ //the same pattern set is usually compiled a handful of times per process
		Size: 16,
	})
}

// ConfigureCache replaces the global cache. A size of 0 disables caching.
func ConfigureCache(opt CacheOptions) {
	if opt.Size <= 0 {
		globalCache.Store(&compileCache{})
		return
	}
	c, err := lru.New[uint64, *cacheEntry](opt.Size)
	if err != nil {
		logutil.GetLogger(context.Background()).Error("init automaton cache failed", zap.Error(err))
		globalCache.Store(&compileCache{})
		return
	}
	globalCache.Store(&compileCache{cache: c})
}

type cacheEntry struct {
	patterns [][]byte
	inst     *automaton.Automaton
}

type compileCache struct {
	cache *lru.Cache[uint64, *cacheEntry]
}

// Compile returns an automaton for patterns, reusing a cached one built from
// the same pattern set in any order. Pattern ids of the result index its own
// pattern table, use Automaton.Pattern to resolve them.
func Compile(ctx context.Context, patterns [][]byte) (*automaton.Automaton, error) {
	return globalCache.Load().compile(ctx, patterns)
}

func (c *compileCache) compile(ctx context.Context, patterns [][]byte) (*automaton.Automaton, error) {
	if c.cache == nil {
		return automaton.New(patterns)
	}
	sorted := canonical(patterns)
	key := fingerprint(sorted)
	ent, ok := c.cache.Get(key)
	if ok && slices.EqualFunc(ent.patterns, sorted, bytes.Equal) {
		logutil.GetLogger(ctx).Debug("automaton cache hit", zap.Uint64("key", key), zap.Int("patterns", len(patterns)))
		return ent.inst, nil
	}
	inst, err := automaton.New(patterns)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, &cacheEntry{patterns: sorted, inst: inst})
	return inst, nil
}

func canonical(patterns [][]byte) [][]byte {
	rs := slices.Clone(patterns)
	slices.SortFunc(rs, bytes.Compare)
	return slices.CompactFunc(rs, bytes.Equal)
}

func fingerprint(sorted [][]byte) uint64 {
	d := xxhash.New()
	var lenbuf [binary.MaxVarintLen64]byte
	for _, p := range sorted {
		n := binary.PutUvarint(lenbuf[:], uint64(len(p)))
		_, _ = d.Write(lenbuf[:n])
		_, _ = d.Write(p)
	}
	return d.Sum64()
}
