package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/robtzou/momentum/internal/config"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:     "momentum",
	Short:   "Personalized daily planning for students",
	Version: version,
	Long: `momentum interviews you about your schedule preferences, builds a
profile report, and turns it into planning advice plus calendar-ready events.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		level := slog.LevelInfo
		if strings.EqualFold(cfg.Log.Level, "debug") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
