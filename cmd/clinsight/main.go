// Copyright 2025 Clinsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/clinsight/clinsight"
	"github.com/clinsight/clinsight/ai"
	"github.com/clinsight/clinsight/core"
)

func main() {
	app := &cli.App{
		Name:  "clinsight",
		Usage: "Evidence-linked differential diagnosis from clinical notes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Embed the literature corpus and persist the evidence store",
				Action: indexCommand,
				Flags: append(commonFlags(),
					&cli.BoolFlag{
						Name:  "rebuild",
						Usage: "Re-embed even if a persisted store exists",
					},
				),
			},
			{
				Name:      "diagnose",
				Usage:     "Run the diagnostic pipeline over clinical notes",
				ArgsUsage: "[notes-file]",
				Action:    diagnoseCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:    "notes",
						Aliases: []string{"n"},
						Usage:   "Clinical notes text (reads the file argument or stdin when omitted)",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of literature passages to retrieve",
						Value: 8,
					},
					&cli.BoolFlag{
						Name:  "rule-extract",
						Usage: "Use the deterministic rule-based finding extractor instead of the LLM",
					},
					&cli.BoolFlag{
						Name:  "timings",
						Usage: "Print per-stage timings to stderr",
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Retrieve literature passages for a free-text query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(commonFlags(),
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of passages to retrieve",
						Value: 8,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			Value:   "./clinsight_db",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
		&cli.StringFlag{
			Name:  "generator-host",
			Usage: "Generation service host URL (defaults to embedding-host)",
		},
		&cli.StringFlag{
			Name:  "generator-model",
			Usage: "Generation model name",
			Value: "qwen2.5:3b",
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	generatorHost := c.String("generator-host")
	if generatorHost == "" {
		generatorHost = c.String("embedding-host")
	}
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorHost(generatorHost),
		ai.WithGeneratorModel(c.String("generator-model")),
	)
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	opts := []clinsight.SystemOption{
		clinsight.WithAIConfig(aiConfigFromFlags(c)),
	}
	if c.Bool("rebuild") {
		opts = append(opts, clinsight.WithRebuild())
	}

	sys, err := clinsight.NewSystem(ctx, c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to build evidence store: %w", err)
	}
	defer sys.Close()

	manifest := sys.EvidenceStore().Manifest()
	fmt.Fprintf(os.Stderr, "Evidence store ready: %d passages, %d dimensions, fingerprint %d\n",
		manifest.Passages, manifest.Dimensions, manifest.Fingerprint)
	return nil
}

func diagnoseCommand(c *cli.Context) error {
	ctx := context.Background()

	notes, err := readNotes(c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(notes) == "" {
		return fmt.Errorf("no clinical notes provided")
	}

	opts := []clinsight.SystemOption{
		clinsight.WithAIConfig(aiConfigFromFlags(c)),
		clinsight.WithTopK(c.Int("top-k")),
	}
	if c.Bool("rule-extract") {
		opts = append(opts, clinsight.WithRuleExtraction())
	}

	sys, err := clinsight.NewSystem(ctx, c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer sys.Close()

	result, err := sys.Diagnose(ctx, notes)
	if err != nil {
		return err
	}
	if result.Err != nil {
		return result.Err
	}

	fmt.Println(result.Report)

	printValidation(os.Stderr, result)
	if c.Bool("timings") {
		printTimings(os.Stderr, result.Timings)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	sys, err := clinsight.NewSystem(ctx, c.String("db"),
		clinsight.WithAIConfig(aiConfigFromFlags(c)),
		clinsight.WithTopK(c.Int("top-k")))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer sys.Close()

	results, err := sys.Engine().Retrieve(ctx, []core.Finding{{Name: query}})
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	fmt.Printf("Found %d passages\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s (%s)[%0.3f]\n", i, hit.ID, hit.SourceTitle, hit.Score)
	}
	return nil
}

// readNotes resolves the notes text from the --notes flag, a file argument,
// or stdin, in that order.
func readNotes(c *cli.Context) (string, error) {
	if notes := c.String("notes"); notes != "" {
		return notes, nil
	}
	if c.Args().Len() > 0 {
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return "", fmt.Errorf("failed to read notes file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read notes from stdin: %w", err)
	}
	return string(data), nil
}

func printValidation(w io.Writer, result *core.PipelineResult) {
	if result.Validation.Valid {
		fmt.Fprintf(w, "Citations: %d checked, all valid\n", result.Validation.CitationsFound)
		return
	}
	fmt.Fprintf(w, "Citations: %d checked, %d issues\n",
		result.Validation.CitationsFound, len(result.Validation.Issues))
	for _, issue := range result.Validation.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
}

func printTimings(w io.Writer, timings []core.StageTiming) {
	for _, timing := range timings {
		fmt.Fprintf(w, "%-22s %s\n", timing.Stage, timing.Duration)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
