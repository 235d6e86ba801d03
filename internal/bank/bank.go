package bank

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// Params holds the query parameters accepted by every bank link.
type Params struct {
	MinLen int      `schema:"min_len"`
	Limit  int      `schema:"limit"`
	Unique bool     `schema:"unique"`
	Item   []string `schema:"item"`
}

// Loader reads the tokens behind a parsed link.
type Loader func(uri *url.URL, params *Params) ([][]byte, error)

var m = make(map[string]Loader)

func Register(scheme string, ld Loader) {
	m[scheme] = ld
}

// Load resolves a bank link such as "file:///data/patterns.txt?min_len=4" or
// "list://?item=he&item=she". A link without scheme is read as a file path.
func Load(link string) ([][]byte, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, fmt.Errorf("empty bank link")
	}
	if !strings.Contains(link, "://") {
		link = "file://" + link
	}
	uri, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("parse bank link failed, link:%s, err:%w", link, err)
	}
	ld, ok := m[uri.Scheme]
	if !ok {
		return nil, fmt.Errorf("no bank loader found, scheme:%s", uri.Scheme)
	}
	params := &Params{}
	if err := decodeParams(params, uri.Query()); err != nil {
		return nil, fmt.Errorf("decode bank params failed, link:%s, err:%w", link, err)
	}
	if params.MinLen < 1 {
		params.MinLen = 1
	}
	return ld(uri, params)
}

func decodeParams(out interface{}, in map[string][]string) error {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	if err := d.Decode(out, in); err != nil {
		return err
	}
	return nil
}

type collector struct {
	params *Params
	seen   map[string]struct{}
	items  [][]byte
}

func newCollector(params *Params) *collector {
	c := &collector{params: params}
	if params.Unique {
		c.seen = make(map[string]struct{})
	}
	return c
}

// add keeps tok when it is long enough and reports whether the limit is hit.
func (c *collector) add(tok string) bool {
	if len(tok) < c.params.MinLen {
		return false
	}
	if c.seen != nil {
		if _, ok := c.seen[tok]; ok {
			return false
		}
		c.seen[tok] = struct{}{}
	}
	c.items = append(c.items, []byte(tok))
	return c.params.Limit > 0 && len(c.items) >= c.params.Limit
}
