package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robtzou/momentum/internal/config"
	"github.com/robtzou/momentum/internal/groq"
	"github.com/robtzou/momentum/internal/planner"
	"github.com/robtzou/momentum/internal/profile"
	"github.com/robtzou/momentum/internal/prompt"
	"github.com/robtzou/momentum/internal/quiz"
)

// --- quiz ---

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer the schedule questionnaire and build your profile report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			cfg.Report.Path = out
		}

		session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
		p := quiz.Run(session)

		report, err := profile.Render(p)
		if err != nil {
			return fmt.Errorf("rendering profile: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", report)

		// A failed save degrades to console-only output; the run still counts.
		if err := profile.Save(cfg.Report.Path, report); err != nil {
			printError("Could not save the report: %v", err)
			printWarning("Your profile was printed above; re-run the quiz to save it.")
			return nil
		}
		printSuccess("Profile saved to %s", cfg.Report.Path)
		return nil
	},
}

func init() {
	quizCmd.Flags().String("output", "", "report file path (default: profile.txt)")
}

// --- suggest ---

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate planning advice and calendar events from your profile",
	Long: `Generate planning advice and calendar events from your profile.

The saved report is sent to the Groq API twice: once for free-form planning
advice, once to convert that advice into a strict JSON list of calendar
events. Requires GROQ_API_KEY in the environment (or a .env file).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if v, _ := cmd.Flags().GetString("report"); v != "" {
			cfg.Report.Path = v
		}
		if v, _ := cmd.Flags().GetString("model"); v != "" {
			cfg.Groq.Model = v
		}
		if v, _ := cmd.Flags().GetString("timezone"); v != "" {
			cfg.Planner.Timezone = v
		}

		client, err := groq.NewWithBaseURL(cfg.Groq.APIKey, cfg.Groq.BaseURL)
		if err != nil {
			printError("%v", err)
			return nil
		}
		pl := planner.New(client, cfg.Groq.Model, cfg.Report.Path, cfg.Planner.Timezone)
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		printStep("Analyzing your profile...")
		advice, err := pl.Advise(ctx)
		if err != nil {
			printError("%v", err)
			return nil
		}
		fmt.Fprintf(out, "\n--- Advisor Suggestions ---\n%s\n", advice)

		printStep("Converting suggestions to calendar events...")
		extraction, err := pl.ExtractEvents(ctx, advice)
		if err != nil {
			var parseErr *planner.ParseError
			if errors.As(err, &parseErr) {
				printError("%v", parseErr)
				fmt.Fprintf(out, "Raw output:\n%s\n", parseErr.Raw)
			} else {
				printError("%v", err)
			}
			return nil
		}
		if extraction == nil {
			printWarning("The model returned no advice to convert.")
			return nil
		}

		pretty, err := json.MarshalIndent(extraction, "", "  ")
		if err != nil {
			return fmt.Errorf("formatting events: %w", err)
		}
		fmt.Fprintf(out, "\n--- Extracted Calendar JSON ---\n%s\n", pretty)
		printSuccess("Extracted %d events", len(extraction.Events))
		return nil
	},
}

func init() {
	suggestCmd.Flags().String("report", "", "report file path (default: profile.txt)")
	suggestCmd.Flags().String("model", "", "Groq model identifier")
	suggestCmd.Flags().String("timezone", "", "default IANA timezone for events")
}

// --- show ---

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved profile report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		data, err := os.ReadFile(cfg.Report.Path)
		if errors.Is(err, os.ErrNotExist) {
			printWarning("No profile report at %s — run 'momentum quiz' first.", cfg.Report.Path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
