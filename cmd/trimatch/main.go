// Command trimatch classifies paths against the patterns of a rules file.
//
//	trimatch -r rules.yaml src/main.go docs/index.html
//	find . -type f | trimatch -r rules.yaml --only=dir,wildcard
//	trimatch -r rules.yaml --list --limit=10
//
// Each query is printed on its own line followed by the best pattern of every matching
// kind, or "-" when nothing matched. With --list, the registered patterns are printed
// instead, one per line, prefixed by their kind.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Potterli20/go-flags-fork"
	"github.com/tigerwill90/trimatch"
	"github.com/tigerwill90/trimatch/internal/iterutil"
	"github.com/tigerwill90/trimatch/internal/rules"
	"github.com/tigerwill90/trimatch/internal/slogpretty"
)

type options struct {
	Rules   string `short:"r" long:"rules" description:"YAML rules file" required:"yes"`
	Ext     bool   `short:"x" long:"ext" description:"Classify the full extension of each path instead of the path"`
	Only    string `short:"o" long:"only" description:"Comma separated kinds to report (dir, prefix, postfix, wildcard, pair)"`
	List    bool   `short:"l" long:"list" description:"Print the registered patterns instead of classifying queries"`
	Limit   uint   `long:"limit" description:"With --list, print at most this many patterns per kind (0 means no limit)"`
	Verbose bool   `short:"v" long:"verbose" description:"Print pattern registration logs"`
}

func main() {
	var opts options
	args, err := flags.Parse(&opts)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	lvl := slog.LevelWarn
	if opts.Verbose {
		lvl = slog.LevelDebug
	}
	handler := slogpretty.New(os.Stderr, os.Stderr, lvl)

	if err := run(opts, args, os.Stdin, os.Stdout, handler); err != nil {
		slog.New(handler).Error("trimatch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts options, args []string, stdin io.Reader, stdout io.Writer, handler slog.Handler) error {
	kinds, err := rules.ParseKinds(opts.Only)
	if err != nil {
		return err
	}

	r, err := rules.Load(opts.Rules)
	if err != nil {
		return err
	}
	set, err := rules.Compile(r, handler)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if opts.List {
		if err := list(w, set, kinds, opts.Limit); err != nil {
			return err
		}
		return w.Flush()
	}

	classify := func(path string) error {
		q := path
		if opts.Ext {
			q = trimatch.FullExtension(path)
		}
		_, err := fmt.Fprintf(w, "%s\t%s\n", path, set.Classify(q, kinds...))
		return err
	}

	if len(args) > 0 {
		for _, path := range args {
			if err := classify(path); err != nil {
				return err
			}
		}
		return w.Flush()
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if err := classify(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read queries: %w", err)
	}
	return w.Flush()
}

func list(w io.Writer, set *rules.Set, kinds []rules.Kind, limit uint) error {
	if len(kinds) == 0 {
		kinds = rules.Kinds
	}
	for _, kind := range kinds {
		patterns := set.Patterns(kind)
		if limit > 0 {
			patterns = iterutil.Take(patterns, limit)
		}
		for pattern := range patterns {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", kind, strconv.Quote(pattern)); err != nil {
				return err
			}
		}
	}
	return nil
}
