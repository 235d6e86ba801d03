package scan

import (
	"context"
	"fmt"

	"github.com/xxxsen/ahoscan/internal/automaton"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Document is one named text to scan.
type Document struct {
	Name string
	Data []byte
}

// Result holds the matches found in one document.
type Result struct {
	Name    string
	Matches []automaton.Match
}

// ScanAll scans docs against one shared automaton with at most concurrent
// documents in flight. Results are in the order of docs.
func ScanAll(ctx context.Context, a *automaton.Automaton, docs []Document, concurrent int) ([]Result, error) {
	if a == nil {
		return nil, fmt.Errorf("nil automaton")
	}
	if concurrent <= 0 {
		concurrent = 1
	}
	rs := make([]Result, len(docs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrent)
	for i, doc := range docs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rs[i] = Result{Name: doc.Name, Matches: a.FindAll(doc.Data)}
			logutil.GetLogger(ctx).Debug("scan document finished",
				zap.String("name", doc.Name), zap.Int("size", len(doc.Data)), zap.Int("matches", len(rs[i].Matches)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("scan documents failed, err:%w", err)
	}
	return rs, nil
}
