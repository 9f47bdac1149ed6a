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
	"github.com/scytale-project/scytale/internal/config"
)

func recipeManager(dir string) (*cipher.RecipeManager, error) {
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		dir = cfg.RecipeDir
	}
	rm := cipher.NewRecipeManager(dir)
	if err := rm.LoadRecipes(); err != nil {
		return nil, fmt.Errorf("load recipes from %s: %w", dir, err)
	}
	return rm, nil
}

func runRecipeList(args []string) int {
	return runRecipeListTo(os.Stdout, args)
}

func runRecipeListTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("recipe list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dir := fs.String("dir", "", "recipe directory (defaults to the configured one)")
	query := fs.String("search", "", "only list recipes matching this query")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rm, err := recipeManager(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	recipes := rm.ListRecipes()
	if *query != "" {
		recipes = rm.SearchRecipes(*query)
	}
	if len(recipes) == 0 {
		fmt.Fprintln(out, "no recipes found")
		return 0
	}
	for _, r := range recipes {
		steps := make([]string, 0, len(r.Pipeline.Operations))
		for _, op := range r.Pipeline.Operations {
			steps = append(steps, op.Name)
		}
		fmt.Fprintf(out, "%s\t%s\t[%s]\n", r.Name, r.Description, strings.Join(steps, " -> "))
	}
	return 0
}

func runRecipeSave(args []string) int {
	return runRecipeSaveTo(os.Stdout, args)
}

func runRecipeSaveTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("recipe save", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dir := fs.String("dir", "", "recipe directory (defaults to the configured one)")
	name := fs.String("name", "", "recipe name")
	description := fs.String("description", "", "recipe description")
	tags := fs.String("tags", "", "comma-separated tags")
	pipelinePath := fs.String("pipeline", "", "path to a pipeline JSON file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "--name is required")
		return 2
	}
	if *pipelinePath == "" {
		fmt.Fprintln(os.Stderr, "--pipeline is required")
		return 2
	}

	data, err := os.ReadFile(*pipelinePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read pipeline: %v\n", err)
		return 2
	}
	var pipeline cipher.Pipeline
	if err := json.Unmarshal(data, &pipeline); err != nil {
		fmt.Fprintf(os.Stderr, "parse pipeline: %v\n", err)
		return 2
	}
	if len(pipeline.Operations) == 0 {
		fmt.Fprintln(os.Stderr, "pipeline has no operations")
		return 2
	}

	rm, err := recipeManager(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	recipe := &cipher.Recipe{
		Name:        *name,
		Description: *description,
		Pipeline:    pipeline,
	}
	if trimmed := strings.TrimSpace(*tags); trimmed != "" {
		for _, tag := range strings.Split(trimmed, ",") {
			recipe.Tags = append(recipe.Tags, strings.TrimSpace(tag))
		}
	}
	if err := rm.SaveRecipe(recipe); err != nil {
		fmt.Fprintf(os.Stderr, "save recipe: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "recipe %s saved\n", recipe.Name)
	return 0
}

func runRecipeRun(args []string) int {
	return runRecipeRunTo(os.Stdout, args)
}

func runRecipeRunTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("recipe run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dir := fs.String("dir", "", "recipe directory (defaults to the configured one)")
	name := fs.String("name", "", "recipe to run")
	reverse := fs.Bool("reverse", false, "run the reversed pipeline (decrypt)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "--name is required")
		return 2
	}

	rm, err := recipeManager(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	recipe, ok := rm.GetRecipe(*name)
	if !ok {
		fmt.Fprintf(os.Stderr, "recipe %q not found\n", *name)
		return 1
	}

	pipeline := &recipe.Pipeline
	if *reverse {
		pipeline, err = recipe.Pipeline.Reverse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "reverse pipeline: %v\n", err)
			return 1
		}
	}

	text, err := readInput(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	result, err := pipeline.Execute(context.Background(), []byte(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "run recipe %s: %v\n", recipe.Name, err)
		return 1
	}
	printText(out, string(result))
	return 0
}

func runRecipeDelete(args []string) int {
	return runRecipeDeleteTo(os.Stdout, args)
}

func runRecipeDeleteTo(out io.Writer, args []string) int {
	fs := flag.NewFlagSet("recipe delete", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dir := fs.String("dir", "", "recipe directory (defaults to the configured one)")
	name := fs.String("name", "", "recipe to delete")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "--name is required")
		return 2
	}

	rm, err := recipeManager(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := rm.DeleteRecipe(*name); err != nil {
		fmt.Fprintf(os.Stderr, "delete recipe: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "recipe %s deleted\n", *name)
	return 0
}
