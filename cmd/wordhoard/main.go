package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quellen/wordhoard"
	"github.com/quellen/wordhoard/codec"
	"github.com/quellen/wordhoard/fold"
	"github.com/quellen/wordhoard/index"
	"github.com/quellen/wordhoard/inspect"
	"github.com/quellen/wordhoard/storage"

	"github.com/klauspost/compress/gzip"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "index":
		err = runIndex(args[1:], stdout)
	case "top":
		err = runTop(args[1:], stdout)
	case "ascii":
		err = runASCII(args[1:], stdout)
	case "inspect":
		err = runInspect(args[1:], stdout)
	case "dedup":
		err = runDedup(args[1:], stdout)
	default:
		usage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wordhoard <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  index    print every term of the input files with its positions")
	fmt.Fprintln(w, "  top      print the most frequent terms of the input files")
	fmt.Fprintln(w, "  ascii    transliterate the input files toward ASCII")
	fmt.Fprintln(w, "  inspect  describe each code point of the arguments")
	fmt.Fprintln(w, "  dedup    add files to a corpus, reporting duplicates")
}

// readText reads path as UTF-8 text. Files ending in .gz are transparently
// decompressed. A byte order mark wins over the declared encoding.
func readText(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if c, ok := codec.Sniff(raw); ok {
		return c.Decode(raw)
	}
	c, err := codec.Lookup(encoding)
	if err != nil {
		return "", err
	}
	return c.Decode(raw)
}

func runIndex(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	encoding := fs.String("encoding", codec.Default().Name(), "declared text encoding of the input files")
	foldCase := fs.Bool("fold", false, "index case insensitively")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("index: at least one file is required")
	}
	var opts []index.Option
	if *foldCase {
		opts = append(opts, index.WithFold())
	}
	for _, path := range fs.Args() {
		text, err := readText(path, *encoding)
		if err != nil {
			return err
		}
		x, err := index.Scan(strings.NewReader(text), opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %d terms\n", path, x.Len())
		for _, term := range x.Terms() {
			postings := x.Postings(term)
			locs := make([]string, 0, len(postings))
			for _, p := range postings {
				locs = append(locs, fmt.Sprintf("(%d,%d)", p.Line, p.Column))
			}
			fmt.Fprintf(stdout, "%-24s %s\n", term, strings.Join(locs, " "))
		}
	}
	return nil
}

func runTop(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("top", flag.ContinueOnError)
	encoding := fs.String("encoding", codec.Default().Name(), "declared text encoding of the input files")
	n := fs.Int("n", 10, "number of terms to print")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("top: at least one file is required")
	}
	for _, path := range fs.Args() {
		text, err := readText(path, *encoding)
		if err != nil {
			return err
		}
		x, err := index.Scan(strings.NewReader(text), index.WithFold())
		if err != nil {
			return err
		}
		counts := x.Counts()
		fmt.Fprintf(stdout, "%s: %d tokens\n", path, counts.Total())
		for _, entry := range counts.MostCommon(*n) {
			fmt.Fprintf(stdout, "%6d %s\n", entry.Count, entry.Item)
		}
	}
	return nil
}

func runASCII(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("ascii", flag.ContinueOnError)
	encoding := fs.String("encoding", codec.Default().Name(), "declared text encoding of the input files")
	shaveOnly := fs.Bool("shave", false, "only strip combining marks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("ascii: at least one file is required")
	}
	for _, path := range fs.Args() {
		text, err := readText(path, *encoding)
		if err != nil {
			return err
		}
		if *shaveOnly {
			fmt.Fprint(stdout, fold.ShaveMarks(text))
			continue
		}
		fmt.Fprint(stdout, fold.ASCII(text))
	}
	return nil
}

func runInspect(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	find := fs.Bool("find", false, "treat the arguments as a character name query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("inspect: text or query arguments are required")
	}
	if *find {
		for _, info := range inspect.Find(strings.Join(fs.Args(), " ")) {
			printInfo(stdout, info)
		}
		return nil
	}
	for _, arg := range fs.Args() {
		for _, info := range inspect.String(arg) {
			printInfo(stdout, info)
		}
	}
	return nil
}

func printInfo(w io.Writer, info inspect.Info) {
	fmt.Fprintf(w, "%s\t%c\t%s\t%s\n", info.Code, info.Rune, strings.Join(info.Categories, ","), info.Name)
}

func runDedup(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dedup", flag.ContinueOnError)
	encoding := fs.String("encoding", codec.Default().Name(), "declared text encoding of the input files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("dedup: at least one file is required")
	}
	ctx := context.Background()
	corpus := wordhoard.Open(storage.NewMemory())
	for _, path := range fs.Args() {
		text, err := readText(path, *encoding)
		if err != nil {
			return err
		}
		report, err := wordhoard.Analyze(ctx, corpus, filepath.Base(path), strings.NewReader(text))
		if err != nil {
			return err
		}
		status := "added"
		if !report.Added {
			status = "duplicate"
		}
		fmt.Fprintf(stdout, "%-9s %s  %d tokens, %d distinct  %s\n", status, report.ID, report.Tokens, report.Distinct, path)
	}
	fmt.Fprintf(stdout, "%d unique documents\n", corpus.Len())
	return nil
}
