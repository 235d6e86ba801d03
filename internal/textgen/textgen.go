// Package textgen builds synthetic pattern sets and texts from word banks.
package textgen

import (
	"fmt"
	"math/rand/v2"
)

// Generator draws from a seeded PRNG so a run can be reproduced.
type Generator struct {
	rng *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Shuffle permutes items in place by swapping item i with a random item in
// [0, i].
func Shuffle[T any](g *Generator, items []T) {
	for i := range items {
		rn := g.rng.IntN(i + 1)
		items[i], items[rn] = items[rn], items[i]
	}
}

// Patterns returns n patterns picked from a shuffled copy of all.
func (g *Generator) Patterns(all [][]byte, n int) ([][]byte, error) {
	if n < 0 || n > len(all) {
		return nil, fmt.Errorf("invalid pattern count:%d, bank size:%d", n, len(all))
	}
	cp := append([][]byte(nil), all...)
	Shuffle(g, cp)
	return cp[:n], nil
}

// Text concatenates n words sampled uniformly with replacement.
func (g *Generator) Text(words [][]byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid word count:%d", n)
	}
	if n > 0 && len(words) == 0 {
		return nil, fmt.Errorf("empty word bank")
	}
	var size int
	for _, w := range words {
		size += len(w)
	}
	buf := make([]byte, 0, n*((size/max(len(words), 1))+1))
	for i := 0; i < n; i++ {
		buf = append(buf, words[g.rng.IntN(len(words))]...)
	}
	return buf, nil
}
