package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scytale-project/scytale/internal/cipher"
	"github.com/scytale-project/scytale/internal/freq"
)

func runDecode(args []string) int {
	return runDecodeTo(os.Stdout, args)
}

func runDecodeTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cipherName := fs.String("cipher", "caesar", "cipher to reverse (caesar, vigenere, rot13, substitute)")
	shift := fs.Int("shift", 3, "shift amount for the caesar cipher")
	key := fs.String("key", "", "keyword for the vigenere cipher")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Naive substitution has no inverse key; it guesses the plaintext
	// by aligning observed letter frequencies with English.
	if strings.EqualFold(strings.TrimSpace(*cipherName), "substitute") {
		text, err := readInput(fs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		upper := strings.ToUpper(text)
		counts := freq.SortedCounts(freq.LetterCounts(upper))
		mapping := cipher.NaiveSubstitution(counts)
		printText(out, cipher.SubstituteAlphabet(upper, mapping))
		return 0
	}

	opName, params, err := cipherOpConfig(*cipherName, *shift, *key, "decode")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	text, err := readInput(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	op, ok := cipher.GetOperation(opName)
	if !ok {
		fmt.Fprintf(os.Stderr, "operation %s is not registered\n", opName)
		return 1
	}
	result, err := op.Execute(context.Background(), []byte(text), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}
	printText(out, string(result))
	return 0
}
