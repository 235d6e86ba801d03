package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/xxxsen/ahoscan/internal/config"
	"github.com/xxxsen/ahoscan/internal/scan"
	_ "github.com/xxxsen/ahoscan/internal/searcher/register"
	"github.com/xxxsen/common/logger"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML configuration file")
	mode := flag.String("mode", "", "aho|find|all|scan")
	patterns := flag.String("patterns", "", "pattern bank link, e.g. file://patterns.txt?min_len=4")
	words := flag.String("words", "", "word bank link used to generate the text")
	numPatterns := flag.Int("num-patterns", 0, "number of patterns picked from the pattern bank")
	numWords := flag.Int("num-words", 0, "number of words in the generated text")
	seed := flag.Uint64("seed", 0, "random seed")
	printHits := flag.Bool("print", false, "print every occurrence as pattern:offset")
	dump := flag.Bool("dump", false, "log the automaton links at debug level")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			// logger not initialised yet, fallback to stderr
			log.Fatalf("init config failed, err:%v", err)
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "patterns":
			cfg.Patterns = *patterns
		case "words":
			cfg.Words = *words
		case "num-patterns":
			cfg.NumPatterns = *numPatterns
		case "num-words":
			cfg.NumWords = *numWords
		case "seed":
			cfg.Seed = *seed
		case "print":
			cfg.Print = *printHits
		case "dump":
			cfg.Dump = *dump
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config, err:%v", err)
	}
	logkit := logger.Init(cfg.Log.File, cfg.Log.Level, int(cfg.Log.FileCount),
		int(cfg.Log.FileSize), int(cfg.Log.KeepDays), cfg.Log.Console)
	defer logkit.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Pprof.Enable {
		startPprofServer(ctx, cfg.Pprof.Bind, logkit)
	}
	scan.ConfigureCache(scan.CacheOptions{Size: cfg.Cache.Size})

	logkit.Info("ahoscan start", zap.String("mode", cfg.Mode), zap.String("patterns", cfg.Patterns))
	if err := run(ctx, cfg, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logkit.Fatal("run failed", zap.Error(err))
	}
	logkit.Info("ahoscan finished")
}
