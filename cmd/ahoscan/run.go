package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xxxsen/ahoscan/internal/automaton"
	"github.com/xxxsen/ahoscan/internal/bank"
	"github.com/xxxsen/ahoscan/internal/bench"
	"github.com/xxxsen/ahoscan/internal/config"
	"github.com/xxxsen/ahoscan/internal/scan"
	"github.com/xxxsen/ahoscan/internal/searcher"
	"github.com/xxxsen/ahoscan/internal/textgen"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	patterns, err := bank.Load(cfg.Patterns)
	if err != nil {
		return fmt.Errorf("load pattern bank failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("pattern bank loaded", zap.Int("count", len(patterns)))
	if cfg.Mode == config.ModeScan {
		return runScan(ctx, cfg, patterns, out)
	}
	return runBench(ctx, cfg, patterns, out)
}

func searcherTypes(mode string) []string {
	switch mode {
	case config.ModeAll:
		return []string{config.ModeAho, config.ModeFind}
	default:
		return []string{mode}
	}
}

func runBench(ctx context.Context, cfg *config.Config, all [][]byte, out io.Writer) error {
	words, err := bank.Load(cfg.Words)
	if err != nil {
		return fmt.Errorf("load word bank failed, err:%w", err)
	}
	gen := textgen.New(cfg.Seed)
	patterns, err := gen.Patterns(all, cfg.NumPatterns)
	if err != nil {
		return err
	}
	text, err := gen.Text(words, cfg.NumWords)
	if err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("text generated", zap.Int("patterns", len(patterns)), zap.Int("text_size", len(text)))

	ss := make([]searcher.ISearcher, 0, 2)
	for _, typ := range searcherTypes(cfg.Mode) {
		s, err := searcher.MakeSearcher(typ, patterns, cfg.SearcherArgs(typ))
		if err != nil {
			return fmt.Errorf("make searcher failed, type:%s, err:%w", typ, err)
		}
		if cfg.Dump {
			if ah, ok := s.(interface{ Automaton() *automaton.Automaton }); ok {
				dumpAutomaton(ctx, ah.Automaton())
			}
		}
		ss = append(ss, s)
	}
	var hitOut io.Writer
	if cfg.Print {
		hitOut = out
	}
	reports, err := bench.RunAll(ctx, ss, text, hitOut)
	if err != nil {
		return err
	}
	for _, rp := range reports {
		fmt.Fprintln(out, rp.String())
	}
	return nil
}

func runScan(ctx context.Context, cfg *config.Config, patterns [][]byte, out io.Writer) error {
	a, err := scan.Compile(ctx, patterns)
	if err != nil {
		return fmt.Errorf("compile automaton failed, err:%w", err)
	}
	if cfg.Dump {
		dumpAutomaton(ctx, a)
	}
	docs := make([]scan.Document, 0, len(cfg.Documents))
	for _, path := range cfg.Documents {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("read document %s: %w", path, err)
		}
		docs = append(docs, scan.Document{Name: path, Data: data})
	}
	rs, err := scan.ScanAll(ctx, a, docs, cfg.Concurrent)
	if err != nil {
		return err
	}
	for _, r := range rs {
		if cfg.Print {
			for _, m := range r.Matches {
				fmt.Fprintf(out, "%s:%s:%d\n", r.Name, a.Pattern(m.Pattern), m.Start)
			}
		}
		fmt.Fprintf(out, "%s - occurrence: %d\n", r.Name, len(r.Matches))
	}
	return nil
}

func dumpAutomaton(ctx context.Context, a *automaton.Automaton) {
	lg := logutil.GetLogger(ctx)
	lg.Debug("automaton built", zap.Int("patterns", a.NumPatterns()), zap.Int("nodes", a.NumNodes()))
	for l := range a.Links() {
		fields := []zap.Field{
			zap.Int("depth", l.Depth), zap.String("symbol", string(l.Symbol)),
			zap.Int("fail_depth", l.FailDepth), zap.String("fail_symbol", string(l.FailSymbol)),
		}
		if l.HasDict {
			fields = append(fields, zap.Int("dict_depth", l.DictDepth), zap.String("dict_symbol", string(l.DictSymbol)))
		}
		lg.Debug("automaton link", fields...)
	}
	for p := range a.Patterns() {
		lg.Debug("automaton pattern", zap.ByteString("pattern", p))
	}
}
