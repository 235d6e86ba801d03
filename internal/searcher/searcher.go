package searcher

import (
	"context"
	"fmt"
	"sort"
)

// Hit is one occurrence reported by a searcher.
type Hit struct {
	Pattern []byte
	Start   int
}

type ISearcher interface {
	Name() string
	// Search reports every occurrence to fn, which may be nil, and returns
	// the number of occurrences.
	Search(ctx context.Context, text []byte, fn func(Hit)) (int, error)
}

type Factory func(name string, patterns [][]byte, args interface{}) (ISearcher, error)

var m = make(map[string]Factory)

func Register(typ string, fac Factory) {
	m[typ] = fac
}

func MakeSearcher(typ string, patterns [][]byte, args interface{}) (ISearcher, error) {
	cr, ok := m[typ]
	if !ok {
		return nil, fmt.Errorf("searcher type:%s not found", typ)
	}
	return cr(typ, patterns, args)
}

// Types lists the registered searcher types.
func Types() []string {
	rs := make([]string, 0, len(m))
	for typ := range m {
		rs = append(rs, typ)
	}
	sort.Strings(rs)
	return rs
}
