package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scytale-project/scytale/internal/freq"
)

func runFreq(args []string) int {
	return runFreqTo(os.Stdout, args)
}

func runFreqTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("freq", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	ngraph := fs.Int("ngraph", 0, "tabulate n-graphs of this length instead of single letters")
	prefixes := fs.Bool("prefixes", false, "restrict n-graphs to word prefixes")
	suffixes := fs.Bool("suffixes", false, "restrict n-graphs to word suffixes")
	html := fs.Bool("html", false, "strip HTML markup before counting")
	ioc := fs.Bool("ioc", false, "print the index of coincidence")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *prefixes && *suffixes {
		fmt.Fprintln(os.Stderr, "--prefixes and --suffixes are mutually exclusive")
		return 2
	}
	if (*prefixes || *suffixes) && *ngraph <= 0 {
		fmt.Fprintln(os.Stderr, "--prefixes and --suffixes require --ngraph")
		return 2
	}

	text, err := readInput(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *html {
		text, err = freq.ExtractText(strings.NewReader(text))
		if err != nil {
			fmt.Fprintf(os.Stderr, "extract text: %v\n", err)
			return 1
		}
	}

	if *ioc {
		fmt.Fprintf(out, "index of coincidence: %.4f (english ≈ %.3f)\n", freq.IndexOfCoincidence(text), freq.EnglishIoC)
		return 0
	}

	if *ngraph > 0 {
		words := freq.Words(text)
		var graphs map[string]int
		switch {
		case *prefixes:
			graphs = freq.NGraphPrefixes(words, *ngraph)
		case *suffixes:
			graphs = freq.NGraphSuffixes(words, *ngraph)
		default:
			graphs = freq.NGraphs(words, *ngraph)
		}
		for _, gc := range freq.ByCount(graphs) {
			fmt.Fprintf(out, "%s %d\n", gc.Graph, gc.Count)
		}
		return 0
	}

	for _, rc := range freq.SortedCounts(freq.LetterCounts(text)) {
		fmt.Fprintf(out, "%c %d\n", rc.Letter, rc.Count)
	}
	return 0
}
