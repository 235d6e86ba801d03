package bank

import "net/url"

func loadList(_ *url.URL, params *Params) ([][]byte, error) {
	c := newCollector(params)
	for _, item := range params.Item {
		if c.add(item) {
			break
		}
	}
	return c.items, nil
}

func init() {
	Register("list", loadList)
}
