package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	qpsnapshot "github.com/mon-martins/qpc-snapshot"
	"github.com/mon-martins/qpc-snapshot/internal/config"
	"github.com/mon-martins/qpc-snapshot/internal/discover"
	"github.com/mon-martins/qpc-snapshot/internal/logging"
)

func main() {
	var flagConfig string
	flag.StringVar(&flagConfig, "config", "", "path to a YAML configuration file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println(`Usage: qp-snapshot [-config file.yaml] "['./dir1', './dir2']"`)
		os.Exit(1)
	}

	roots, err := parseRootList(flag.Arg(0))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	if err := run(roots, cfg, time.Now().Format("2006-01-02"), logger); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

// parseRootList parses the single positional argument: a bracketed,
// comma-separated, quote-tolerant list of root directories, e.g.
// "['./dir1', "./dir2"]". Empty items are dropped; an empty result is an
// error.
func parseRootList(arg string) ([]string, error) {
	s := strings.TrimSpace(arg)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	var roots []string
	for _, item := range strings.Split(s, ",") {
		item = strings.Trim(strings.TrimSpace(item), `'"`)
		if item != "" {
			roots = append(roots, item)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no root directories in %q", arg)
	}
	return roots, nil
}

// checkBaseNames rejects runs where two discovered headers share a base
// name: the generated enum and query-function symbols are derived from the
// base name alone, so such headers would emit colliding symbols.
func checkBaseNames(headers []string) error {
	seen := make(map[string]string)
	for _, path := range headers {
		name := filepath.Base(path)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("duplicate header base name %q: %s and %s", base, prev, path)
		}
		seen[base] = path
	}
	return nil
}

func run(roots []string, cfg config.Config, date string, logger *zap.Logger) error {
	headers, err := discover.Headers(roots, cfg.HeaderExtensions)
	if err != nil {
		return err
	}
	if err := checkBaseNames(headers); err != nil {
		return err
	}

	spec := qpsnapshot.FilterSpec{
		AllowedReturnTypes:     cfg.AllowedReturnTypes,
		RequiredParamFragments: cfg.RequiredParamFragments,
	}
	gen := qpsnapshot.NewGenerator(cfg.OutputBase, date, spec)

	generated := 0
	for _, path := range headers {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		skipped, err := gen.AddHeader(path, content)
		if err != nil {
			return err
		}
		if skipped {
			logger.Info("no matching state handlers, skipping", zap.String("header", path))
			continue
		}
		generated++
		logger.Info("generated snapshot section", zap.String("header", path))
	}

	headerFile := cfg.OutputBase + ".h"
	sourceFile := cfg.OutputBase + ".c"
	if err := os.WriteFile(headerFile, []byte(gen.Header()), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(sourceFile, []byte(gen.Source()), 0644); err != nil {
		return err
	}

	logger.Info("snapshot files written",
		zap.String("header_file", headerFile),
		zap.String("source_file", sourceFile),
		zap.Int("headers", len(headers)),
		zap.Int("generated", generated))
	return nil
}
