package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecipeSaveRunReverse(t *testing.T) {
	recipeDir := t.TempDir()
	pipelinePath := filepath.Join(t.TempDir(), "pipeline.json")
	pipeline := `{
  "operations": [
    {"name": "caesar_encode", "parameters": {"shift": 3}},
    {"name": "route_spiral_encode", "parameters": {"width": 3, "length": 3}}
  ],
  "reversible": true
}`
	if err := os.WriteFile(pipelinePath, []byte(pipeline), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	code := runRecipeSaveTo(&out, []string{
		"--dir", recipeDir,
		"--name", "field-cipher",
		"--description", "caesar shift hardened with a spiral route",
		"--tags", "caesar,route",
		"--pipeline", pipelinePath,
	})
	if code != 0 {
		t.Fatalf("save exit code = %d", code)
	}

	out.Reset()
	if code := runRecipeListTo(&out, []string{"--dir", recipeDir}); code != 0 {
		t.Fatalf("list exit code = %d", code)
	}
	if !strings.Contains(out.String(), "field-cipher") {
		t.Fatalf("list output = %q", out.String())
	}
	if !strings.Contains(out.String(), "caesar_encode -> route_spiral_encode") {
		t.Fatalf("list output = %q", out.String())
	}

	input := writeInputFile(t, "attackatd")
	out.Reset()
	if code := runRecipeRunTo(&out, []string{"--dir", recipeDir, "--name", "field-cipher", input}); code != 0 {
		t.Fatalf("run exit code = %d", code)
	}
	crypt := strings.TrimSuffix(out.String(), "\n")
	if crypt == "attackatd" {
		t.Fatal("pipeline left the input unchanged")
	}

	cryptFile := writeInputFile(t, crypt)
	out.Reset()
	if code := runRecipeRunTo(&out, []string{"--dir", recipeDir, "--name", "field-cipher", "--reverse", cryptFile}); code != 0 {
		t.Fatalf("reverse run exit code = %d", code)
	}
	if got := strings.TrimSuffix(out.String(), "\n"); got != "attackatd" {
		t.Fatalf("reversed = %q", got)
	}
}

func TestRecipeRunUnknownName(t *testing.T) {
	var out bytes.Buffer
	if code := runRecipeRunTo(&out, []string{"--dir", t.TempDir(), "--name", "missing"}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRecipeDelete(t *testing.T) {
	recipeDir := t.TempDir()
	pipelinePath := filepath.Join(t.TempDir(), "pipeline.json")
	pipeline := `{"operations": [{"name": "rot13"}], "reversible": true}`
	if err := os.WriteFile(pipelinePath, []byte(pipeline), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	code := runRecipeSaveTo(&out, []string{
		"--dir", recipeDir,
		"--name", "rot",
		"--pipeline", pipelinePath,
	})
	if code != 0 {
		t.Fatalf("save exit code = %d", code)
	}

	out.Reset()
	if code := runRecipeDeleteTo(&out, []string{"--dir", recipeDir, "--name", "rot"}); code != 0 {
		t.Fatalf("delete exit code = %d", code)
	}

	out.Reset()
	if code := runRecipeListTo(&out, []string{"--dir", recipeDir}); code != 0 {
		t.Fatalf("list exit code = %d", code)
	}
	if !strings.Contains(out.String(), "no recipes found") {
		t.Fatalf("list output = %q", out.String())
	}
}
