package find

import (
	"context"
	"fmt"

	"github.com/xxxsen/ahoscan/internal/baseline"
	"github.com/xxxsen/ahoscan/internal/searcher"
)

type findSearcher struct {
	name     string
	patterns [][]byte
}

func (s *findSearcher) Name() string {
	return s.name
}

func (s *findSearcher) Search(ctx context.Context, text []byte, fn func(searcher.Hit)) (int, error) {
	var report func(int, int)
	if fn != nil {
		report = func(pattern, start int) {
			fn(searcher.Hit{Pattern: s.patterns[pattern], Start: start})
		}
	}
	return baseline.Find(s.patterns, text, report), nil
}

func createFindSearcher(name string, patterns [][]byte, _ interface{}) (searcher.ISearcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("empty pattern set")
	}
	for idx, p := range patterns {
		if len(p) == 0 {
			return nil, fmt.Errorf("empty pattern found, index:%d", idx)
		}
	}
	return &findSearcher{name: name, patterns: patterns}, nil
}

func init() {
	searcher.Register("find", createFindSearcher)
}
