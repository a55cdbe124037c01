package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/report"
	"github.com/johnquangdev/meeting-insights/internal/adapter/writer"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/smtp"
	"github.com/johnquangdev/meeting-insights/internal/usecase/email"
	"github.com/johnquangdev/meeting-insights/internal/usecase/extract"
	"github.com/johnquangdev/meeting-insights/internal/usecase/guardrail"
	"github.com/johnquangdev/meeting-insights/internal/usecase/pipeline"
	pkgai "github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"
)

var (
	flagSendEmails bool
	flagOutputDir  string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "insights <transcript.txt> <people.json>",
	Short: "Turn a meeting transcript into structured outcomes and follow-up emails",
	Long: `insights processes one meeting transcript against one people directory:
it validates that the two belong together, extracts action items, decisions,
risks and open questions with a language model, writes a JSON artifact keyed
by meeting type and date, and can optionally email each action item's
assignee. Email dispatch is off unless --send-emails is given.`,
	Args:          cobra.ExactArgs(2),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Flags().BoolVar(&flagSendEmails, "send-emails", false, "dispatch follow-up emails after writing the artifact")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "artifact directory (default $OUTPUT_DIR or ./outputs)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagSendEmails {
		if err := cfg.ValidateSMTP(); err != nil {
			return err
		}
	}
	if flagOutputDir != "" {
		cfg.Output.Dir = flagOutputDir
	}

	logger, err := newLogger(cfg.Log.Level, flagVerbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	groq := pkgai.NewGroqClient(&cfg.Groq)
	v := pkgvalidator.New()

	var sender email.Sender
	if flagSendEmails {
		sender = smtp.New(&cfg.SMTP, logger)
	}

	svc := pipeline.New(
		guardrail.New(groq, cfg.Groq.MaxRetries, logger),
		extract.New(groq, cfg.Groq.MaxRetries, logger),
		writer.New(cfg.Output.Dir, logger),
		email.NewComposer(""),
		sender,
		v,
		logger,
	)

	result, err := svc.Run(cmd.Context(), pipeline.Options{
		TranscriptPath: args[0],
		RosterPath:     args[1],
		SendEmails:     flagSendEmails,
	})
	if err != nil {
		return err
	}

	report.Render(cmd.OutOrStdout(), result.Outcome, result.ArtifactPath, result.SendResults)
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	if verbose || level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}
