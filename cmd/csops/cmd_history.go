package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csops-dev/csops/usecase/history"
)

func newCmdHistory() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "history",
		Short:              "Inspect reconcile run history",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("invalid command")
		},
	}
	cmd.AddCommand(newCmdHistoryList())
	return cmd
}

func newCmdHistoryList() *cobra.Command {
	var in history.ListInput
	c := &cobra.Command{
		Use:                "list",
		Short:              "List past reconcile runs, most recent first",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildHistoryUseCase(cmd)
			if err != nil {
				return err
			}
			if u == nil {
				return errors.New("no history store configured (set history.url in csops.yml)")
			}
			out, err := u.List(cmd.Context(), &in)
			if err != nil {
				return err
			}
			for _, run := range out.Runs {
				if err := printStream(cmd, run); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&in.Kind, "kind", "", "Filter by resource kind (zone|host)")
	c.Flags().StringVar(&in.Name, "name", "", "Filter by resource name")
	c.Flags().IntVar(&in.Limit, "limit", 0, "Limit the number of runs returned")
	return c
}
