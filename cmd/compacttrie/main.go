// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	compact "github.com/absolutelightning/go-compact-trie"
	"github.com/absolutelightning/go-compact-trie/internal/config"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to config file")
	keysFile := flag.String("keys", "", "Path to key list, overrides keys.file")
	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("compacttrie v%s\n", version)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, zerolog.InfoLevel)

	cfg, err := loadConfig(*configPath, *keysFile)
	if err != nil {
		logger.Fatal().Err(err).Str("config", *configPath).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.Log.LogLevel())

	args := flag.Args()
	if err := run(cfg, &logger, os.Stdout, args[0], args[1:]); err != nil {
		logger.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig reads the config file, applies the --keys override and
// validates the result.
func loadConfig(path, keysFile string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if keysFile != "" {
		cfg.Keys.File = keysFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func showHelp() {
	helpText := `compacttrie: load a key list into a compact trie and query it

Usage:
  compacttrie [flags] <command> [arguments]

Flags:
  --config string   Path to config file
  --keys string     Path to key list (one key per line, optional TAB value)
  --help            Show this help message
  --version         Show version information

Commands:
  find <key>...     exact lookups
  prefix <key>...   shortest stored prefix of each key
  longest <key>...  longest stored prefix of each key
  scope <key>...    deepest stored key ending in the delimiter
  dump              print every entry in order
  stats             print node and slot statistics
  tree              print the node layout
`
	fmt.Print(helpText)
}

func run(cfg *config.Config, logger *zerolog.Logger, out io.Writer, command string, args []string) error {
	f, err := os.Open(cfg.Keys.File)
	if err != nil {
		return fmt.Errorf("failed to open keys file: %w", err)
	}
	defer f.Close()

	start := time.Now()
	t, err := buildTrie(cfg, logger, f)
	if err != nil {
		return err
	}
	logger.Info().
		Int("entries", t.Len()).
		Dur("took", time.Since(start)).
		Str("file", cfg.Keys.File).
		Msg("loaded keys")

	return dispatch(cfg, t, out, command, args)
}

func buildTrie(cfg *config.Config, logger *zerolog.Logger, r io.Reader) (*compact.Trie[byte, string], error) {
	kvs, err := readKeys(r, cfg.Keys.ReverseDomains, cfg.Lookup.DelimiterByte())
	if err != nil {
		return nil, err
	}

	t := compact.New[byte, string](
		compact.WithLogger(zerologr.New(logger)),
		compact.WithLookupCache(cfg.Lookup.CacheSize),
	)
	if cfg.Lookup.FoldCase {
		if err := t.SetTransform(compact.FoldASCII[byte]); err != nil {
			return nil, fmt.Errorf("failed to set transform: %w", err)
		}
	}
	for _, kv := range kvs {
		t.Insert([]byte(kv.key), kv.value)
	}
	return t, nil
}

func dispatch(cfg *config.Config, t *compact.Trie[byte, string], out io.Writer, command string, args []string) error {
	delim := cfg.Lookup.DelimiterByte()
	query := func(s string) []byte {
		if cfg.Keys.ReverseDomains {
			s = reverseDomain(s, delim)
		}
		return []byte(s)
	}

	var lookup func([]byte) compact.Handle[byte, string]
	switch command {
	case "find":
		lookup = t.Find
	case "prefix":
		lookup = t.FindPrefix
	case "longest":
		lookup = t.LongestPrefix
	case "scope":
		lookup = func(k []byte) compact.Handle[byte, string] {
			return t.FindPrefixTerminated(k, delim)
		}
	case "dump":
		c := t.Contents()
		for i := 0; i < c.Len(); i++ {
			h := c.At(i)
			fmt.Fprintf(out, "%s\t%s\n", h.Key(), h.Value())
		}
		return nil
	case "stats":
		st := t.Stats()
		fmt.Fprintf(out, "entries\t%d\nnodes\t%d\nslots\t%d\nempty_slots\t%d\nmax_depth\t%d\n",
			st.Entries, st.Nodes, st.Slots, st.EmptySlots, st.MaxDepth)
		return nil
	case "tree":
		return t.Dump(out)
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	if len(args) == 0 {
		return fmt.Errorf("%s needs at least one key", command)
	}
	for _, arg := range args {
		h := lookup(query(arg))
		if h == t.End() {
			fmt.Fprintf(out, "%s\t-\n", arg)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", arg, h.Key(), h.Value())
	}
	return nil
}
