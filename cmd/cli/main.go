package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/internal/ideas"
	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/internal/render"
	"github.com/idea-agent/internal/source"
	"github.com/idea-agent/internal/source/custom"
	"github.com/idea-agent/internal/source/rss"
	"github.com/idea-agent/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ideas",
		Short: "Social media content idea generator",
		Long: `Generates short-form social media content ideas for a topic using a
generative text service, with built-in template ideas when the service is
not available.`,
		PersistentPreRunE: initializeApp,
		SilenceUsage:      true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(trendingCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initializeApp(cmd *cobra.Command, args []string) error {
	var err error

	// Load config
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	return nil
}

// ============ GENERATE ============

func generateCmd() *cobra.Command {
	var topic string
	var category string
	var format string

	cmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Generate content ideas for a topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if topic == "" && len(args) == 1 {
				topic = args[0]
			}
			topic = strings.TrimSpace(topic)
			if topic == "" {
				return fmt.Errorf("a topic is required")
			}

			cat, err := models.ParseCategory(category)
			if err != nil {
				return err
			}

			outFormat, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			generator := ideas.NewFromConfig(ctx, cfg, log)
			batch := generator.Generate(ctx, topic, cat)

			return render.Write(cmd.OutOrStdout(), batch, outFormat)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic to generate ideas for")
	cmd.Flags().StringVar(&category, "category", "all", "Category: all, humor, tech, finance, fitness, education, lifestyle")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, markdown, html or json")

	return cmd
}

// ============ CATEGORIES ============

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range models.Categories() {
				fmt.Fprintf(out, "  %-10s %s\n", c, c.Description())
			}
			return nil
		},
	}
}

// ============ TRENDING ============

func trendingCmd() *cobra.Command {
	var limit int
	var category string
	var generate bool

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Suggest topics from configured feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			cat, err := models.ParseCategory(category)
			if err != nil {
				return err
			}

			sourceManager := source.NewManager()
			if cfg.Sources.RSS.Enabled {
				for _, src := range rss.NewMultiple(cfg.Sources.RSS, log) {
					sourceManager.Register(src)
				}
			}
			if cfg.Sources.Custom.Enabled && len(cfg.Sources.Custom.Topics) > 0 {
				sourceManager.Register(custom.New(cfg.Sources.Custom, log))
			}

			if len(sourceManager.GetSources()) == 0 {
				return fmt.Errorf("no topic sources configured (sources.rss.feeds or sources.custom.topics)")
			}

			topics, errs := sourceManager.Suggest(ctx, limit)
			for _, e := range errs {
				log.Warn().Err(e).Msg("Topic source failed")
			}

			fmt.Fprintf(out, "\n=== Trending Topics ===\n")
			for i, t := range topics {
				fmt.Fprintf(out, "[%d] %s (%s)\n", i+1, t.Title, t.SourceName)
			}

			if !generate {
				return nil
			}

			generator := ideas.NewFromConfig(ctx, cfg, log)
			for _, t := range topics {
				batch := generator.Generate(ctx, t.Title, cat)
				if err := render.Write(out, batch, render.FormatText); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum number of topics")
	cmd.Flags().StringVar(&category, "category", "all", "Category used with --generate")
	cmd.Flags().BoolVar(&generate, "generate", false, "Generate ideas for each suggested topic")

	return cmd
}
