package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scytale-project/scytale/internal/cipher"
)

func runRoute(args []string, encode bool) int {
	return runRouteTo(os.Stdout, args, encode)
}

func runRouteTo(out io.Writer, args []string, encode bool) int {
	name := "route decode"
	if encode {
		name = "route encode"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	width := fs.Int("width", 0, "grid width (columns)")
	length := fs.Int("length", 0, "grid length (rows)")
	clockwise := fs.Bool("clockwise", true, "walk the spiral clockwise")
	inward := fs.Bool("inward", true, "walk the spiral from the rim toward the centre")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *width <= 0 || *length <= 0 {
		fmt.Fprintln(os.Stderr, "--width and --length must be positive")
		return 2
	}

	text, err := readInput(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	opName := "route_spiral_decode"
	if encode {
		opName = "route_spiral_encode"
	}
	op, ok := cipher.GetOperation(opName)
	if !ok {
		fmt.Fprintf(os.Stderr, "operation %s is not registered\n", opName)
		return 1
	}
	params := map[string]interface{}{
		"width":     *width,
		"length":    *length,
		"clockwise": *clockwise,
		"inward":    *inward,
	}
	result, err := op.Execute(context.Background(), []byte(text), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	printText(out, string(result))
	return 0
}
