package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scytale-project/scytale/internal/cipher"
)

func runEncode(args []string) int {
	return runEncodeTo(os.Stdout, args)
}

func runEncodeTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cipherName := fs.String("cipher", "caesar", "cipher to apply (caesar, vigenere, rot13, substitute)")
	shift := fs.Int("shift", 3, "shift amount for the caesar cipher")
	key := fs.String("key", "", "keyword for the vigenere cipher")
	mappingPath := fs.String("mapping", "", "path to a JSON substitution table for the substitute cipher")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	opName, params, err := cipherOpConfig(*cipherName, *shift, *key, "encode")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if opName == "substitute" {
		if *mappingPath == "" {
			fmt.Fprintln(os.Stderr, "--mapping is required for the substitute cipher")
			return 2
		}
		mapping, err := readMapping(*mappingPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		params = map[string]interface{}{"mapping": mapping}
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
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	printText(out, string(result))
	return 0
}

// cipherOpConfig maps the shared --cipher/--shift/--key flags onto a
// registered operation name and its parameters. direction is "encode"
// or "decode".
func cipherOpConfig(name string, shift int, key, direction string) (string, map[string]interface{}, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "caesar":
		return "caesar_" + direction, map[string]interface{}{"shift": shift}, nil
	case "vigenere":
		if strings.TrimSpace(key) == "" {
			return "", nil, fmt.Errorf("--key is required for the vigenere cipher")
		}
		return "vigenere_" + direction, map[string]interface{}{"key": key}, nil
	case "rot13":
		return "rot13", nil, nil
	case "substitute":
		return "substitute", nil, nil
	default:
		return "", nil, fmt.Errorf("unknown cipher %q (expected caesar, vigenere, rot13, or substitute)", name)
	}
}

// readMapping loads a substitution table from a JSON object of
// single-character keys to single-character values.
func readMapping(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var mapping map[string]interface{}
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("mapping %s is empty", path)
	}
	return mapping, nil
}
