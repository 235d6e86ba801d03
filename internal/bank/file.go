package bank

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

func loadFile(uri *url.URL, params *Params) ([][]byte, error) {
	path := uri.Host + uri.Path
	if path == "" {
		return nil, fmt.Errorf("file bank requires a path")
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open bank file %s: %w", path, err)
	}
	defer f.Close()
	c := newCollector(params)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if c.add(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read bank file %s: %w", path, err)
	}
	return c.items, nil
}

func init() {
	Register("file", loadFile)
}
