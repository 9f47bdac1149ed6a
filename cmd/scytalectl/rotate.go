package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scytale-project/scytale/internal/cipher"
)

func runRotate(args []string) int {
	return runRotateTo(os.Stdout, args)
}

func runRotateTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	all := fs.Bool("all", false, "print all 26 rotations, one per line")
	by := fs.Int("by", 13, "rotation amount when --all is not set")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readInput(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if *all {
		for shift, rotation := range cipher.AllRotations(text) {
			fmt.Fprintf(out, "%2d %s\n", shift, rotation)
		}
		return 0
	}
	printText(out, cipher.Rotate(text, *by))
	return 0
}
