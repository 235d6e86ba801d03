package register

import (
	_ "github.com/xxxsen/ahoscan/internal/searcher/aho"
	_ "github.com/xxxsen/ahoscan/internal/searcher/find"
)
