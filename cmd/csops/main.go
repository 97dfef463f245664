package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	_ "github.com/csops-dev/csops/adapters/drivers/cloudstack"
	_ "github.com/csops-dev/csops/adapters/drivers/sim"
	"github.com/csops-dev/csops/config/csopscfg"
	"github.com/csops-dev/csops/internal/logging"
)

const (
	logDir           = ".csops/logs"
	logRetentionDays = 7
)

// logFile is the log destination opened by PersistentPreRunE. main closes it
// once command execution is over; until then every layer logs through it.
var logFile *logging.LogFile

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "csops",
		Short:   "CloudStack resource reconciler",
		Long:    "csops converges CloudStack zones and hosts toward declared desired state",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global config flag
	defaultConfig := os.Getenv("CSOPS_CONFIG")
	if defaultConfig == "" {
		defaultConfig = csopscfg.DefaultPath
	}
	cmd.PersistentFlags().String("config", defaultConfig, "Path to csops.yml (env CSOPS_CONFIG)")

	// global flags (config already exists)
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env CSOPS_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-output", "-", "Log destination (- for stderr, none, or a file path)")
	cmd.PersistentFlags().StringP("output", "o", "json", "Output format (json|yaml)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("CSOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		output, _ := c.Flags().GetString("log-output")
		lf, err := logging.OpenLogFile(output, logDir)
		if err != nil {
			return err
		}
		logFile = lf
		if lf.Path != "" {
			_ = logging.CleanupOldLogFiles(logDir, logRetentionDays)
		}
		l, err := logging.NewWithWriter(format, slog.LevelInfo, lf.Writer())
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdZone())
	cmd.AddCommand(newCmdHost())
	cmd.AddCommand(newCmdApply())
	cmd.AddCommand(newCmdHistory())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		closeLogFile()
		os.Exit(1)
	}
	closeLogFile()
}
