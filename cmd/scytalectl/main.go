package main

import (
	"flag"
	"fmt"
	"os"
)

const productName = "Scytale"
const cliBanner = productName + " CLI (scytalectl)"

func init() {
	defaultUsage := flag.Usage
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), cliBanner)
		fmt.Fprintln(flag.CommandLine.Output())
		if defaultUsage != nil {
			defaultUsage()
		}
	}
}

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch args[0] {
	case "encode":
		os.Exit(runEncode(args[1:]))
	case "decode":
		os.Exit(runDecode(args[1:]))
	case "rotate":
		os.Exit(runRotate(args[1:]))
	case "route":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "route subcommand required (encode or decode)")
			os.Exit(2)
		}
		switch args[1] {
		case "encode":
			os.Exit(runRoute(args[2:], true))
		case "decode":
			os.Exit(runRoute(args[2:], false))
		default:
			fmt.Fprintf(os.Stderr, "unknown route subcommand: %s\n", args[1])
			os.Exit(2)
		}
	case "freq":
		os.Exit(runFreq(args[1:]))
	case "analyze":
		os.Exit(runAnalyze(args[1:]))
	case "crack":
		os.Exit(runCrack(args[1:]))
	case "recipe":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "recipe subcommand required (list, save, run, or delete)")
			os.Exit(2)
		}
		switch args[1] {
		case "list":
			os.Exit(runRecipeList(args[2:]))
		case "save":
			os.Exit(runRecipeSave(args[2:]))
		case "run":
			os.Exit(runRecipeRun(args[2:]))
		case "delete":
			os.Exit(runRecipeDelete(args[2:]))
		default:
			fmt.Fprintf(os.Stderr, "unknown recipe subcommand: %s\n", args[1])
			os.Exit(2)
		}
	case "self-update":
		os.Exit(runSelfUpdate(args[1:]))
	case "version":
		os.Exit(runVersion(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}
