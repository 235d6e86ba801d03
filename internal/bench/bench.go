package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xxxsen/ahoscan/internal/searcher"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// Report is the outcome of one timed search.
type Report struct {
	Name        string
	Occurrences int
	Elapsed     time.Duration
}

func (r *Report) String() string {
	return fmt.Sprintf("%s - occurrence: %d    time: %f", r.Name, r.Occurrences, r.Elapsed.Seconds())
}

// Run times one search over text. When out is not nil every hit is written to
// it as "pattern:offset", which is included in the elapsed time.
func Run(ctx context.Context, s searcher.ISearcher, text []byte, out io.Writer) (*Report, error) {
	var (
		fn func(searcher.Hit)
		w  *bufio.Writer
	)
	if out != nil {
		w = bufio.NewWriter(out)
		fn = func(h searcher.Hit) {
			fmt.Fprintf(w, "%s:%d\n", h.Pattern, h.Start)
		}
	}
	start := time.Now()
	cnt, err := s.Search(ctx, text, fn)
	if err != nil {
		return nil, fmt.Errorf("search failed, searcher:%s, err:%w", s.Name(), err)
	}
	if w != nil {
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("write hits failed, searcher:%s, err:%w", s.Name(), err)
		}
	}
	rp := &Report{Name: s.Name(), Occurrences: cnt, Elapsed: time.Since(start)}
	logutil.GetLogger(ctx).Debug("search finished", zap.String("searcher", rp.Name),
		zap.Int("occurrence", rp.Occurrences), zap.Duration("elapsed", rp.Elapsed), zap.Int("text_size", len(text)))
	return rp, nil
}

// RunAll runs every searcher over the same text in order.
func RunAll(ctx context.Context, ss []searcher.ISearcher, text []byte, out io.Writer) ([]*Report, error) {
	rs := make([]*Report, 0, len(ss))
	for _, s := range ss {
		rp, err := Run(ctx, s, text, out)
		if err != nil {
			return nil, err
		}
		rs = append(rs, rp)
	}
	return rs, nil
}
