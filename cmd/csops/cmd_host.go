package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/csops-dev/csops/usecase/history"
	"github.com/csops-dev/csops/usecase/host"
)

func newCmdHost() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "host",
		Short:              "Manage CloudStack hosts",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("invalid command")
		},
	}
	cmd.AddCommand(
		newCmdHostApply(),
		newCmdHostGet(),
	)
	return cmd
}

func newCmdHostApply() *cobra.Command {
	var in host.ReconcileInput
	c := &cobra.Command{
		Use:                "apply",
		Short:              "Reconcile a host toward its declared state",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildHostUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "host.apply", in.Name)
			out, err := u.Reconcile(ctx, &in)
			cleanup(err)

			rec := host.FailureResult(&in, err)
			if err == nil {
				rec = out.Result
			}
			recordRun(ctx, cmd, &history.RecordInput{
				Kind:    "host",
				Name:    in.Name,
				State:   in.State,
				Changed: rec.Changed,
				Failed:  rec.Failed,
				DryRun:  in.DryRun,
				Msg:     rec.Msg,
			})
			if perr := printRecord(cmd, rec); perr != nil {
				return perr
			}
			return err
		},
	}
	addHostApplyFlags(c.Flags(), &in)
	return c
}

// addHostApplyFlags binds the declared host attributes to flags.
func addHostApplyFlags(fs *pflag.FlagSet, in *host.ReconcileInput) {
	fs.StringVar(&in.Name, "name", "", "Host name (required)")
	fs.StringVar(&in.ID, "id", "", "Host uuid (optional, pins an existing host)")
	fs.StringVar(&in.Pod, "pod", "", "Pod name (required on registration)")
	fs.StringVar(&in.URL, "url", "", "Hypervisor endpoint url (required on registration)")
	fs.StringVar(&in.Username, "username", "", "Hypervisor username (required on registration)")
	fs.StringVar(&in.Password, "password", "", "Hypervisor password (required on registration)")
	fs.StringVar(&in.Zone, "zone", "", "Zone name (falls back to driver settings)")
	fs.StringVar(&in.Hypervisor, "hypervisor", "", "Hypervisor type (falls back to driver settings)")
	fs.StringVar(&in.State, "state", "", "Desired state (enabled|disabled|absent), default enabled")
	fs.BoolVar(&in.DryRun, "dry-run", false, "Report the plan without applying it")
}

func newCmdHostGet() *cobra.Command {
	var in host.GetInput
	c := &cobra.Command{
		Use:                "get",
		Short:              "Show the current state of a host",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildHostUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Get(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return printRecord(cmd, out.Host)
		},
	}
	c.Flags().StringVar(&in.Name, "name", "", "Host name")
	c.Flags().StringVar(&in.ID, "id", "", "Host uuid")
	return c
}
