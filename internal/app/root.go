package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/config"
	"github.com/blackwell-systems/librec/internal/recommend"
	"github.com/blackwell-systems/librec/internal/util"
)

var (
	cfg      *config.Config
	snap     catalog.Snapshot
	recCache *recommend.Cache

	flagNoColor       bool
	flagNoInteractive bool
	flagSeed          string
)

var rootCmd = &cobra.Command{
	Use:   "librec",
	Short: "Browse, validate, and get recommendations from a book catalog",
	Long: `librec is an in-memory library explorer and recommender.

It loads a catalog seed (JSON or YAML), answers filter and hierarchy
queries over it, validates new ratings and reviews, and recommends
unread books from each user's taste profile. Nothing is written back
to disk except with 'librec seed --out'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Seed file path (default: from config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		recCache = recommend.NewCache(cfg.Recommend.CacheCapacity)

		// seed generation and version work without a loaded catalog
		if cmd.Name() == "seed" || cmd.Name() == "version" {
			return nil
		}

		seedPath := flagSeed
		if seedPath == "" {
			seedPath = cfg.Library.SeedPath
		}
		snap, err = catalog.Load(seedPath)
		if err != nil {
			return fmt.Errorf("loading seed: %w", err)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newOverviewCmd(),
		newBooksCmd(),
		newTopCmd(),
		newAnalyzeCmd(),
		newRateCmd(),
		newReviewCmd(),
		newRecommendCmd(),
		newBenchCmd(),
		newGenresCmd(),
		newLoansCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// printField prints an aligned key: value line.
func printField(name, value string) {
	fmt.Printf("  %-12s %s\n", name+":", value)
}

// printErrorMap lists validation violations one per line, red keys.
func printErrorMap(errs map[string]string) {
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "  %s %s\n", color.RedString(field+":"), msg)
	}
}
