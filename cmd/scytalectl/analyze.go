package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/scytale-project/scytale/internal/config"
	"github.com/scytale-project/scytale/internal/kasiski"
	"github.com/scytale-project/scytale/internal/logging"
	"github.com/scytale-project/scytale/internal/report"
)

func runAnalyze(args []string) int {
	return runAnalyzeTo(os.Stdout, args)
}

func runAnalyzeTo(out io.Writer, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	minPattern := fs.Int("min-pattern", cfg.Analysis.MinPatternLength, "shortest repeated pattern to index")
	maxPattern := fs.Int("max-pattern", cfg.Analysis.MaxPatternLength, "longest pattern to grow repeats to")
	auditLog := fs.String("audit-log", cfg.AuditLog, "append stage events to this JSONL file")
	outPath := fs.String("out", "", "append a report to this JSONL file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readInput(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	opts := []kasiski.ExaminerOption{
		kasiski.WithPatternLengths(*minPattern, *maxPattern),
	}
	if *auditLog != "" {
		logger, err := logging.NewAuditLogger("kasiski",
			logging.WithFile(*auditLog), logging.WithoutStdout())
		if err != nil {
			fmt.Fprintf(os.Stderr, "open audit log: %v\n", err)
			return 1
		}
		defer logger.Close()
		opts = append(opts, kasiski.WithLogger(logger))
	}

	examiner, err := kasiski.NewExaminer(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	lengths, err := examiner.Examine(text)
	if err != nil {
		if errors.Is(err, kasiski.ErrNoConsistentPeriod) {
			fmt.Fprintln(os.Stderr, "no repeated pattern recurs at a consistent interval; try different pattern bounds or a longer sample")
			return 1
		}
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "candidate key lengths: %v\n", lengths)

	if *outPath != "" {
		rep := report.Report{
			Method:     "kasiski",
			Summary:    fmt.Sprintf("%d candidate key lengths from repeated-pattern analysis", len(lengths)),
			Source:     sourceName(fs),
			KeyLengths: lengths,
			Confidence: report.ConfidenceMedium,
			AnalyzedAt: report.NewTimestamp(time.Now().UTC()),
		}
		// A lone factor of 1 means every pattern distance was coprime
		// with every other; that is no better than a guess.
		if len(lengths) <= 1 {
			rep.Confidence = report.ConfidenceLow
		}
		if err := writeReport(*outPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "write report: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "report written to %s\n", *outPath)
	}
	return 0
}

func sourceName(fs *flag.FlagSet) string {
	if fs.NArg() == 1 {
		return fs.Arg(0)
	}
	return "stdin"
}

func writeReport(path string, rep report.Report) error {
	rep.ID = report.NewID()
	w := report.NewWriter(path)
	if err := w.Write(rep); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
