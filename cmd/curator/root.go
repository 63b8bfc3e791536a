package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"news_curator/internal/config"
)

const configEnv = "CURATOR_CONFIG"

// runFunc is the body of a command that needs the wired application.
type runFunc func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "curator",
		Short: "Personal developer news curator",
		Long: `curator pulls developer feeds, scores them against your interests and
returns a short reading list: three rule-based picks plus up to four
AI-assisted picks that adapt to your feedback.

Example usage:
  curator serve                          # HTTP API with periodic refresh
  curator refresh                        # Fetch all feeds once
  curator recommend                      # Print the reading list as JSON
  curator feedback <id> --helpful=false  # Judge an article
  curator interests set Rust AI          # Replace interest tags`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv(configEnv), "config file (YAML); defaults apply when empty")

	withApp := func(run runFunc) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := setupLogger(cfg.LogLevel)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			return run(ctx, cmd, a, args)
		}
	}

	root.AddCommand(
		newServeCmd(withApp),
		newRefreshCmd(withApp),
		newRecommendCmd(withApp),
		newFeedbackCmd(withApp),
		newInterestsCmd(withApp),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
