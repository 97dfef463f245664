package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCmdConfig returns a command that reads and shows the current configuration.
func newCmdConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Read and validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Print a concise summary to stdout; never print credentials.
			fmt.Fprintf(cmd.OutOrStdout(), "version=%s api=%s key=%s driver=%s history=%s\n",
				cfg.Version, cfg.API.URL, maskSecret(cfg.API.Key), cfg.Driver.Name, cfg.History.URL)
			return nil
		},
	}
}

// maskSecret keeps the first 4 characters of a credential for identification.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
