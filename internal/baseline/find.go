// Package baseline scans text for each pattern independently. It is quadratic
// in the worst case and exists to cross check and time the automaton.
package baseline

import "bytes"

// Find reports every, possibly overlapping, occurrence of every pattern in
// text, pattern by pattern. fn may be nil. It returns the number of
// occurrences.
func Find(patterns [][]byte, text []byte, fn func(pattern int, start int)) int {
	cnt := 0
	for idx, p := range patterns {
		if len(p) == 0 {
			continue
		}
		for off := 0; off+len(p) <= len(text); {
			pos := bytes.Index(text[off:], p)
			if pos < 0 {
				break
			}
			cnt++
			if fn != nil {
				fn(idx, off+pos)
			}
			off += pos + 1
		}
	}
	return cnt
}
