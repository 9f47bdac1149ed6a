package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput returns the text supplied to a subcommand: the contents of
// a single positional file argument, or stdin when no file is given.
func readInput(fs *flag.FlagSet) (string, error) {
	switch fs.NArg() {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case 1:
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", fs.Arg(0), err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("expected at most one input file, got %d arguments", fs.NArg())
	}
}

func printText(out io.Writer, text string) {
	fmt.Fprint(out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(out)
	}
}
