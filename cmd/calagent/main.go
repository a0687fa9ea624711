package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calagent/internal/agent"
	"calagent/internal/calendar"
	"calagent/internal/config"
	"calagent/internal/intent"
)

const defaultMessage = "Create a meeting with Alex tomorrow at 2 PM"

func main() {
	rootCmd := &cobra.Command{
		Use:   "calagent [message...]",
		Short: "Natural-language Google Calendar assistant",
		Long: "calagent forwards a scheduling request to OpenAI for intent extraction,\n" +
			"then creates or lists events through the Google Calendar API. With no\n" +
			"credentials configured it runs in mock mode on fabricated data.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if cfg.Mock {
		logger.Info("credentials missing, running in mock mode")
	}

	interpreter, err := intent.New(cfg, logger)
	if err != nil {
		return err
	}
	cal, err := calendar.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		message = defaultMessage
	}

	answer, err := agent.New(interpreter, cal, logger).Run(ctx, message)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}
