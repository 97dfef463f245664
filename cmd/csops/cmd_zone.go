package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/csops-dev/csops/usecase/history"
	"github.com/csops-dev/csops/usecase/zone"
)

func newCmdZone() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "zone",
		Short:              "Manage CloudStack zones",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("invalid command")
		},
	}
	cmd.AddCommand(
		newCmdZoneApply(),
		newCmdZoneGet(),
	)
	return cmd
}

func newCmdZoneApply() *cobra.Command {
	var in zone.ReconcileInput
	c := &cobra.Command{
		Use:                "apply",
		Short:              "Reconcile a zone toward its declared state",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "zone.apply", in.Name)
			out, err := u.Reconcile(ctx, &in)
			cleanup(err)

			rec := zone.FailureResult(&in, err)
			if err == nil {
				rec = out.Result
			}
			recordRun(ctx, cmd, &history.RecordInput{
				Kind:    "zone",
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
	addZoneApplyFlags(c.Flags(), &in)
	return c
}

// addZoneApplyFlags binds the declared zone attributes to flags.
func addZoneApplyFlags(fs *pflag.FlagSet, in *zone.ReconcileInput) {
	fs.StringVar(&in.Name, "name", "", "Zone name (required)")
	fs.StringVar(&in.ID, "id", "", "Zone uuid (optional, pins an existing zone)")
	fs.StringVar(&in.DNS1, "dns1", "", "First external DNS server (required on creation)")
	fs.StringVar(&in.DNS2, "dns2", "", "Second external DNS server")
	fs.StringVar(&in.InternalDNS1, "internal-dns1", "", "First internal DNS server (defaults to dns1)")
	fs.StringVar(&in.InternalDNS2, "internal-dns2", "", "Second internal DNS server (defaults to dns2)")
	fs.StringVar(&in.DNS1IPv6, "dns1-ipv6", "", "First external IPv6 DNS server")
	fs.StringVar(&in.DNS2IPv6, "dns2-ipv6", "", "Second external IPv6 DNS server")
	fs.StringVar(&in.NetworkType, "network-type", "", "Network type (basic|advanced), fixed after creation")
	fs.StringVar(&in.NetworkDomain, "network-domain", "", "Network domain for zone networks")
	fs.StringVar(&in.GuestCIDRAddress, "guest-cidr-address", "", "Guest CIDR (advanced zones)")
	fs.StringVar(&in.DHCPProvider, "dhcp-provider", "", "DHCP provider (e.g. VirtualRouter)")
	fs.StringVar(&in.State, "state", "", "Desired state (present|enabled|disabled|absent), default present")
	fs.BoolVar(&in.DryRun, "dry-run", false, "Report the plan without applying it")
}

func newCmdZoneGet() *cobra.Command {
	var in zone.GetInput
	c := &cobra.Command{
		Use:                "get",
		Short:              "Show the current state of a zone",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := u.Get(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return printRecord(cmd, out.Zone)
		},
	}
	c.Flags().StringVar(&in.Name, "name", "", "Zone name")
	c.Flags().StringVar(&in.ID, "id", "", "Zone uuid")
	return c
}
