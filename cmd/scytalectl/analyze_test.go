package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scytale-project/scytale/internal/cipher"
	"github.com/scytale-project/scytale/internal/report"
)

func TestAnalyzeFindsKeyLengths(t *testing.T) {
	// vigenereEncode("cryptoisshortforcryptography", "abcd"): the
	// repeated csastp pattern sits 16 positions apart.
	input := writeInputFile(t, "csastpkvsiqutgqucsastpiuaqjb")
	var out bytes.Buffer
	if code := runAnalyzeTo(&out, []string{"--min-pattern", "3", "--max-pattern", "6", input}); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "candidate key lengths: [16 8 4 2 1]") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestAnalyzeWritesReportAndAuditLog(t *testing.T) {
	dir := t.TempDir()
	input := writeInputFile(t, "csastpkvsiqutgqucsastpiuaqjb")
	outPath := filepath.Join(dir, "reports.jsonl")
	auditPath := filepath.Join(dir, "audit.jsonl")

	var out bytes.Buffer
	code := runAnalyzeTo(&out, []string{
		"--min-pattern", "3",
		"--max-pattern", "6",
		"--out", outPath,
		"--audit-log", auditPath,
		input,
	})
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	reports, err := report.ReadAll(outPath)
	if err != nil {
		t.Fatalf("read reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	rep := reports[0]
	if rep.Method != "kasiski" {
		t.Errorf("method = %q", rep.Method)
	}
	if len(rep.KeyLengths) != 5 || rep.KeyLengths[0] != 16 {
		t.Errorf("key lengths = %v", rep.KeyLengths)
	}
	if rep.Source != input {
		t.Errorf("source = %q, want %q", rep.Source, input)
	}

	audit, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("read audit log: %v", err)
	}
	if !strings.Contains(string(audit), "examination_start") {
		t.Fatalf("audit log missing examination events: %q", audit)
	}
}

func TestAnalyzeNoConsistentPeriod(t *testing.T) {
	input := writeInputFile(t, "abcdefg")
	var out bytes.Buffer
	if code := runAnalyzeTo(&out, []string{input}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestCrackRecoversKey(t *testing.T) {
	passage := "itwasabrightcolddayinaprilandtheclockswerestrikingthirteen" +
		"winstonsmithhischinnuzzledintohisbreastinanefforttoescapethevilewind" +
		"slippedquicklythroughtheglassdoorsofvictorymansions" +
		"thoughnotquicklyenoughtopreventaswirlofgrittydustfromenteringalongwithhim"
	plain := "attackatdawn" + passage[:126] + "attackatdawn" + passage[126:]
	crypt, err := cipher.VigenereEncode(plain, "dog")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	input := writeInputFile(t, crypt)
	outPath := filepath.Join(dir, "reports.jsonl")

	var out bytes.Buffer
	code := runCrackTo(&out, []string{
		"--min-key", "2",
		"--max-key", "5",
		"--out", outPath,
		input,
	})
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "key dog") {
		t.Fatalf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "index of coincidence favours length 3") {
		t.Fatalf("output = %q", out.String())
	}

	reports, err := report.ReadAll(outPath)
	if err != nil {
		t.Fatalf("read reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	rep := reports[0]
	if rep.Method != "vigenere-crack" {
		t.Errorf("method = %q", rep.Method)
	}
	if len(rep.Candidates) == 0 || rep.Candidates[0].Key != "dog" {
		t.Errorf("candidates = %+v", rep.Candidates)
	}
	if rep.Confidence != report.ConfidenceHigh {
		t.Errorf("confidence = %q, want high", rep.Confidence)
	}
	if rep.Metadata["estimated_length"] != "3" {
		t.Errorf("estimated_length = %q", rep.Metadata["estimated_length"])
	}
}

func TestCrackNoCandidates(t *testing.T) {
	input := writeInputFile(t, "abcdefg")
	var out bytes.Buffer
	if code := runCrackTo(&out, []string{input}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
