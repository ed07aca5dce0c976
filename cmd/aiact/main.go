package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coolbeans/aiact/pkg/config"
	"github.com/coolbeans/aiact/pkg/pipeline"
	"github.com/coolbeans/aiact/pkg/search"
	"github.com/coolbeans/aiact/pkg/server"
	"github.com/coolbeans/aiact/pkg/taxonomy"
	"github.com/coolbeans/aiact/pkg/watch"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "aiact",
		Short: "EU AI Act Risk Classifier",
		Long: `Aiact classifies described AI systems against the EU AI Act risk
taxonomy.

It builds a structured profile from a free-text description (optionally
enriched with web search context) and runs it through the Act's ordered
rule chain, producing:
  - A risk category (Prohibited, High-Risk, Transparency, Low-Risk, Exception)
  - Reasoning with the triggering provisions
  - A decision path through the rule chain
  - Compliance recommendations`,
		Version: version,
	}

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(taxonomiesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file, or returns defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildPipeline assembles the assessment pipeline from configuration.
func buildPipeline(cfg *config.Config, searchEnabled bool) *pipeline.Pipeline {
	var provider search.Provider = search.NoopProvider{}
	if searchEnabled {
		ddgConfig := search.DefaultDuckDuckGoConfig()
		ddgConfig.RateLimit = cfg.Search.RateLimitDuration()
		if cfg.Search.UserAgent != "" {
			ddgConfig.UserAgent = cfg.Search.UserAgent
		}
		provider = search.NewDuckDuckGoProvider(ddgConfig)
	}

	pl := pipeline.New(provider)
	pl.Harvester().SetMaxResultsPerQuery(cfg.Search.MaxResultsPerQuery)
	return pl
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an AI system against the EU AI Act",
		Long: `Classify a described AI system against the EU AI Act risk taxonomy.

The description can be given inline or read from a file. With --search,
web context about the system is gathered before profiling; search
failures degrade to an empty supplement and never fail the run.

Examples:
  aiact classify --name "MBUX Assistant" --company "Mercedes-Benz" \
    --description "An AI assistant that helps drivers navigate."
  aiact classify --name Chatter --company Acme --file chatter.txt --search
  aiact classify --name Chatter --company Acme --file chatter.txt --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			company, _ := cmd.Flags().GetString("company")
			description, _ := cmd.Flags().GetString("description")
			file, _ := cmd.Flags().GetString("file")
			enableSearch, _ := cmd.Flags().GetBool("search")
			formatStr, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			configPath, _ := cmd.Flags().GetString("config")

			if name == "" {
				return fmt.Errorf("--name flag is required")
			}
			if description == "" && file == "" {
				return fmt.Errorf("either --description or --file is required")
			}
			if description != "" && file != "" {
				return fmt.Errorf("--description and --file are mutually exclusive")
			}

			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read description file: %w", err)
				}
				description = strings.TrimSpace(string(data))
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			pl := buildPipeline(cfg, enableSearch || cfg.Search.Enabled)
			rep := pl.Run(context.Background(), pipeline.Request{
				Name:         name,
				Company:      company,
				Description:  description,
				EnableSearch: enableSearch || cfg.Search.Enabled,
			})

			switch formatStr {
			case "json":
				data, err := rep.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize report: %w", err)
				}
				fmt.Println(string(data))
			case "table":
				fmt.Println(rep.FormatTable())
			default:
				fmt.Println(rep.String())
			}

			if output != "" {
				data, err := rep.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize report: %w", err)
				}
				outputPath := output
				if !filepath.IsAbs(outputPath) {
					outputPath = filepath.Join(cfg.OutputDir, outputPath)
				}
				if err := os.WriteFile(outputPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Printf("Report written to %s\n", outputPath)
			}

			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "AI system name")
	cmd.Flags().StringP("company", "c", "", "Company or provider name")
	cmd.Flags().StringP("description", "d", "", "System description text")
	cmd.Flags().StringP("file", "F", "", "Read the description from a file")
	cmd.Flags().Bool("search", false, "Gather web context before profiling")
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json, table)")
	cmd.Flags().StringP("output", "o", "", "Write the JSON report to a file")
	cmd.Flags().String("config", "", "Path to aiact.yaml configuration")

	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classification web form and JSON API",
		Long: `Serve an interactive classification form and a JSON API.

Endpoints:
  GET  /                Web form
  POST /api/classify    Classify a system (JSON body)
  GET  /api/taxonomies  List the fixed taxonomies

Example:
  aiact serve --addr :8080 --config aiact.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// The web form carries its own search checkbox, so the
			// pipeline always gets a live provider; per-request
			// enable_search decides whether it is used.
			pl := buildPipeline(cfg, true)

			fmt.Printf("Serving EU AI Act classifier on %s\n", addr)
			return server.New(pl).Run(addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().String("config", "", "Path to aiact.yaml configuration")

	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and classify description files",
		Long: `Watch a directory for AI system description files (.txt, .md) and
write a JSON report next to each (or into --output-dir).

Description file format: an optional "Name | Company" first line, then the
description text.

Example:
  aiact watch --dir ./systems --output-dir ./reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			configPath, _ := cmd.Flags().GetString("config")

			if dir == "" {
				return fmt.Errorf("--dir flag is required")
			}
			if outputDir != "" {
				if err := os.MkdirAll(outputDir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			watcher := watch.New(dir, outputDir, buildPipeline(cfg, cfg.Search.Enabled))
			watcher.SetOnReport(func(sourcePath, reportPath string) {
				fmt.Printf("classified %s -> %s\n", sourcePath, reportPath)
			})

			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("Watching %s for description files (Ctrl-C to stop)\n", dir)

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
			<-signals

			return nil
		},
	}

	cmd.Flags().String("dir", "", "Directory of description files to watch")
	cmd.Flags().String("output-dir", "", "Directory for report files (default: next to sources)")
	cmd.Flags().String("config", "", "Path to aiact.yaml configuration")

	return cmd
}

func taxonomiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomies",
		Short: "Print the fixed classification taxonomies",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := []*taxonomy.Taxonomy{
				taxonomy.Sectors,
				taxonomy.BiometricCategories,
				taxonomy.BiometricPurposes,
				taxonomy.DecisionRoles,
				taxonomy.RiskContexts,
				taxonomy.DataTypes,
				taxonomy.DeploymentContexts,
				taxonomy.UserBases,
			}

			for _, table := range tables {
				fmt.Printf("%s", table.Name)
				if table.Default != "" {
					fmt.Printf(" (default: %s)", table.Default)
				}
				fmt.Println()
				for _, entry := range table.Entries {
					fmt.Printf("  %-30s %s\n", entry.Label, strings.Join(entry.Keywords, ", "))
				}
				fmt.Println()
			}
			return nil
		},
	}
}
