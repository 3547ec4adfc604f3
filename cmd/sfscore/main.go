package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbptools/sfscore/internal/config"
	"github.com/kbptools/sfscore/internal/pkg/logger"
	"github.com/kbptools/sfscore/internal/scorer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sfscore",
		Short: "sfscore - TAC KBP slot-filling scorer",
		Long: `sfscore scores a slot-filling system's responses against a human
assessment key, producing diagnostic and official precision/recall/F1
plus per-slot-type confidence statistics.

Run 'sfscore score <responses file> <key file>' to score a run.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")

	rootCmd.AddCommand(
		scoreCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <responses file> <key file>",
		Short: "Score a response file against an assessment key",
		Long: `Score a response file against an assessment key.

The key file is a concatenation of LDC assessment result files (12
tab-separated columns). The response file carries 4 columns for NIL
assertions and up to 10 when a filler is asserted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Format)

			policy := scorer.Policy{
				Trace:         cfg.Policy.Trace,
				AnyDoc:        cfg.Policy.AnyDoc,
				IgnoreOffsets: cfg.Policy.IgnoreOffsets,
				NoCase:        cfg.Policy.NoCase,
			}
			inputs := scorer.Inputs{
				ResponseFile: args[0],
				KeyFile:      args[1],
				SlotsFile:    cfg.SlotsFile,
			}

			report, err := scorer.Run(cmd.Context(), inputs, policy, log, os.Stdout)
			if err != nil {
				return err
			}

			if cfg.Report.Format == "json" {
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}
			report.WriteText(os.Stdout)
			return nil
		},
	}

	cmd.Flags().Bool("trace", false, "print a line with the assessment of each system response")
	cmd.Flags().Bool("anydoc", false, "judge responses on the answer string alone, ignoring doc id and justification offsets")
	cmd.Flags().Bool("ignore-offsets", false, "judge responses on answer string and doc id, ignoring justification offsets")
	cmd.Flags().Bool("nocase", false, "ignore case when matching answer strings")
	cmd.Flags().String("slots", "", "take the list of entityId:slot pairs from this file (otherwise from system responses)")
	cmd.Flags().String("format", "", "report format (text, json)")

	return cmd
}

// applyFlags overlays explicitly set command-line flags on the loaded
// configuration; flags win over file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("trace") {
		cfg.Policy.Trace, _ = cmd.Flags().GetBool("trace")
	}
	if cmd.Flags().Changed("anydoc") {
		cfg.Policy.AnyDoc, _ = cmd.Flags().GetBool("anydoc")
	}
	if cmd.Flags().Changed("ignore-offsets") {
		cfg.Policy.IgnoreOffsets, _ = cmd.Flags().GetBool("ignore-offsets")
	}
	if cmd.Flags().Changed("nocase") {
		cfg.Policy.NoCase, _ = cmd.Flags().GetBool("nocase")
	}
	if cmd.Flags().Changed("slots") {
		cfg.SlotsFile, _ = cmd.Flags().GetString("slots")
	}
	if cmd.Flags().Changed("format") {
		cfg.Report.Format, _ = cmd.Flags().GetString("format")
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sfscore %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
