package searcher_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/ahoscan/internal/searcher"
	_ "github.com/xxxsen/ahoscan/internal/searcher/register"
)

func bank(ws ...string) [][]byte {
	rs := make([][]byte, 0, len(ws))
	for _, w := range ws {
		rs = append(rs, []byte(w))
	}
	return rs
}

func collect(t *testing.T, s searcher.ISearcher, text string) []string {
	t.Helper()
	var hits []string
	cnt, err := s.Search(context.Background(), []byte(text), func(h searcher.Hit) {
		hits = append(hits, fmt.Sprintf("%s:%d", h.Pattern, h.Start))
	})
	require.NoError(t, err)
	require.Equal(t, cnt, len(hits))
	slices.Sort(hits)
	return hits
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []string{"aho", "find"}, searcher.Types())
}

func TestMakeSearcherUnknown(t *testing.T) {
	_, err := searcher.MakeSearcher("trie", bank("a"), nil)
	assert.Error(t, err)
}

func TestSearchersAgree(t *testing.T) {
	patterns := bank("he", "she", "his", "hers")
	text := "ahishers ushers his shehe"

	aho, err := searcher.MakeSearcher("aho", patterns, nil)
	require.NoError(t, err)
	find, err := searcher.MakeSearcher("find", patterns, nil)
	require.NoError(t, err)
	assert.Equal(t, "aho", aho.Name())
	assert.Equal(t, "find", find.Name())
	assert.Equal(t, collect(t, find, text), collect(t, aho, text))

	ac, err := aho.Search(context.Background(), []byte(text), nil)
	require.NoError(t, err)
	fc, err := find.Search(context.Background(), []byte(text), nil)
	require.NoError(t, err)
	assert.Equal(t, fc, ac)
}

func TestSearchersAgreeRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	words := []string{"acg", "cgt", "tac", "gtac", "a", "ca", "ggg", "tt"}
	var sb strings.Builder
	for i := 0; i < 400; i++ {
		sb.WriteByte("acgt"[rng.IntN(4)])
	}
	text := sb.String()

	aho, err := searcher.MakeSearcher("aho", bank(words...), map[string]interface{}{"no_cache": true})
	require.NoError(t, err)
	find, err := searcher.MakeSearcher("find", bank(words...), nil)
	require.NoError(t, err)
	assert.Equal(t, collect(t, find, text), collect(t, aho, text))
}

func TestSearcherRejectsEmptyPatterns(t *testing.T) {
	for _, typ := range searcher.Types() {
		_, err := searcher.MakeSearcher(typ, nil, nil)
		assert.Error(t, err, typ)
		_, err = searcher.MakeSearcher(typ, bank("a", ""), nil)
		assert.Error(t, err, typ)
	}
}
