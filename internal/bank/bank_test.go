package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toStrings(bs [][]byte) []string {
	rs := make([]string, 0, len(bs))
	for _, b := range bs {
		rs = append(rs, string(b))
	}
	return rs
}

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeBank(t, "the quick\tbrown\n\nfox jumps   over\nthe lazy dog\n")

	tests := []struct {
		name string
		link string
		want []string
	}{
		{"bare path", path, []string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}},
		{"scheme", "file://" + path, []string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}},
		{"min length", "file://" + path + "?min_len=4", []string{"quick", "brown", "jumps", "over", "lazy"}},
		{"limit", "file://" + path + "?min_len=4&limit=2", []string{"quick", "brown"}},
		{"unique", "file://" + path + "?unique=true&limit=7", []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, toStrings(got))
		})
	}
}

func TestLoadList(t *testing.T) {
	got, err := Load("list://?item=he&item=she&item=his&item=&item=hers")
	require.NoError(t, err)
	assert.Equal(t, []string{"he", "she", "his", "hers"}, toStrings(got))

	got, err = Load("list://?item=he&item=she&item=his&min_len=3")
	require.NoError(t, err)
	assert.Equal(t, []string{"she", "his"}, toStrings(got))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load("ftp://example.com/words.txt")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = Load("list://?min_len=abc")
	assert.Error(t, err)
}
