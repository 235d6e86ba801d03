package aho

import (
	"context"

	"github.com/xxxsen/ahoscan/internal/automaton"
	"github.com/xxxsen/ahoscan/internal/scan"
	"github.com/xxxsen/ahoscan/internal/searcher"
	"github.com/xxxsen/common/utils"
)

type config struct {
	NoCache bool `json:"no_cache"`
}

type ahoSearcher struct {
	name string
	inst *automaton.Automaton
}

func (s *ahoSearcher) Name() string {
	return s.name
}

func (s *ahoSearcher) Automaton() *automaton.Automaton {
	return s.inst
}

func (s *ahoSearcher) Search(ctx context.Context, text []byte, fn func(searcher.Hit)) (int, error) {
	if fn == nil {
		return s.inst.Count(text), nil
	}
	cnt := 0
	for mt := range s.inst.Matches(text) {
		cnt++
		fn(searcher.Hit{Pattern: s.inst.Pattern(mt.Pattern), Start: mt.Start})
	}
	return cnt, nil
}

func createAhoSearcher(name string, patterns [][]byte, args interface{}) (searcher.ISearcher, error) {
	c := &config{}
	if args != nil {
		if err := utils.ConvStructJson(args, c); err != nil {
			return nil, err
		}
	}
	var (
		inst *automaton.Automaton
		err  error
	)
	if c.NoCache {
		inst, err = automaton.New(patterns)
	} else {
		inst, err = scan.Compile(context.Background(), patterns)
	}
	if err != nil {
		return nil, err
	}
	return &ahoSearcher{name: name, inst: inst}, nil
}

func init() {
	searcher.Register("aho", createAhoSearcher)
}
