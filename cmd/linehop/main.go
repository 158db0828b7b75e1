// Package main is the linehop demo: it scans text for jump targets with a
// catalogue matcher and either lists them or lets the user pick one
// interactively by typing its hint label.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/linehop/internal/config"
	"github.com/dshills/linehop/internal/jump"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		modeName   = flag.String("mode", "word", "matcher mode (word, camel, line-start, skip-blank, vertical, anywhere)")
		patternArg = flag.String("pattern", "", "match a search pattern instead of a catalogue mode")
		plain      = flag.Bool("plain", false, "treat -pattern as literal text")
		configPath = flag.String("config", "", "config file (default: $LINEHOP_CONFIG or the user config dir)")
		list       = flag.Bool("list", false, "print targets instead of picking interactively")
		direction  = flag.String("direction", "", "restrict targets relative to line 1 column 1 (before, after)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linehop: %v\n", err)
		return 1
	}
	opts := cfg.Options()

	lines, err := readLines(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "linehop: %v\n", err)
		return 1
	}

	matcher, err := selectMatcher(*modeName, *patternArg, *plain, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linehop: %v\n", err)
		return 1
	}

	ctx := jump.Context{
		Window: jump.Window{BottomLine: len(lines) - 1, ColumnLast: maxWidth(lines)},
	}
	switch *direction {
	case "":
	case "before":
		ctx.Direction = jump.DirectionBeforeCursor
	case "after":
		ctx.Direction = jump.DirectionAfterCursor
	default:
		fmt.Fprintf(os.Stderr, "linehop: unknown direction %q\n", *direction)
		return 1
	}

	targets := jump.AssignLabels(jump.Collect(lines, matcher, ctx, opts), cfg.Search.Keys)

	if *list {
		printTargets(os.Stdout, lines, targets)
		return 0
	}

	picked, err := pick(lines, targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linehop: %v\n", err)
		return 1
	}
	if picked == nil {
		return 1
	}
	fmt.Printf("%d:%d\n", picked.Line+1, picked.Span.Start+1)
	return 0
}

// selectMatcher builds the matcher from the flags: a user pattern when one
// was given, a catalogue mode otherwise.
func selectMatcher(modeName, patternArg string, plain bool, opts jump.Options) (*jump.Matcher, error) {
	if patternArg != "" {
		return jump.ByPattern(patternArg, plain, opts)
	}
	mode, err := jump.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	return jump.ForMode(mode)
}

// readLines reads the named file, or stdin when path is empty or "-".
func readLines(path string) ([]string, error) {
	var r *os.File
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// printTargets writes one target per line: position, label, matched text.
func printTargets(w *os.File, lines []string, targets []jump.Target) {
	for _, t := range targets {
		text := ""
		if t.Line < len(lines) {
			line := lines[t.Line]
			end := t.Span.End
			if end > len(line) {
				end = len(line)
			}
			if t.Span.Start < end {
				text = line[t.Span.Start:end]
			}
		}
		fmt.Fprintf(w, "%d:%d\t%s\t%s\n", t.Line+1, t.Span.Start+1, t.Label, text)
	}
}

func maxWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}
