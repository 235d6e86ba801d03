package textgen

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bank(ws ...string) [][]byte {
	rs := make([][]byte, 0, len(ws))
	for _, w := range ws {
		rs = append(rs, []byte(w))
	}
	return rs
}

func TestShuffleIsPermutation(t *testing.T) {
	g := New(42)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(g, items)
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestPatternsDeterministic(t *testing.T) {
	all := bank("alpha", "beta", "gamma", "delta", "epsilon")
	a, err := New(3).Patterns(all, 3)
	require.NoError(t, err)
	b, err := New(3).Patterns(all, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 3)
	assert.Equal(t, bank("alpha", "beta", "gamma", "delta", "epsilon"), all, "input must not be reordered")
}

func TestPatternsRange(t *testing.T) {
	all := bank("a", "b")
	_, err := New(1).Patterns(all, 3)
	assert.Error(t, err)
	_, err = New(1).Patterns(all, -1)
	assert.Error(t, err)
	ps, err := New(1).Patterns(all, 0)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestText(t *testing.T) {
	words := bank("ab", "cd", "ef")
	txt, err := New(9).Text(words, 50)
	require.NoError(t, err)
	assert.Len(t, txt, 100)
	for i := 0; i < len(txt); i += 2 {
		w := txt[i : i+2]
		assert.True(t, bytes.Equal(w, []byte("ab")) || bytes.Equal(w, []byte("cd")) || bytes.Equal(w, []byte("ef")), "unexpected word %q", w)
	}

	again, err := New(9).Text(words, 50)
	require.NoError(t, err)
	assert.Equal(t, txt, again)
}

func TestTextErrors(t *testing.T) {
	_, err := New(1).Text(nil, 1)
	assert.Error(t, err)
	_, err = New(1).Text(bank("a"), -1)
	assert.Error(t, err)
	txt, err := New(1).Text(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, txt)
}
