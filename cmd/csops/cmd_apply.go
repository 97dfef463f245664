package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csops-dev/csops/usecase/history"
	"github.com/csops-dev/csops/usecase/host"
	"github.com/csops-dev/csops/usecase/zone"
)

// manifest is the on-disk shape consumed by `csops apply -f`.
type manifest struct {
	Resources []yaml.Node `yaml:"resources"`
}

func readManifest(cmd *cobra.Command, path string) (*manifest, error) {
	if path == "" {
		return nil, errors.New("manifest file required (-f)")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if len(m.Resources) == 0 {
		return nil, errors.New("manifest declares no resources")
	}
	return &m, nil
}

// newCmdApply reconciles every resource declared in a manifest file.
// Resources are applied in declaration order and a failure does not stop the
// remaining resources; the command exits non-zero if any resource failed.
func newCmdApply() *cobra.Command {
	var file string
	var dryRun bool
	c := &cobra.Command{
		Use:                "apply",
		Short:              "Reconcile all resources declared in a manifest",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readManifest(cmd, file)
			if err != nil {
				return err
			}
			zoneUC, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}
			hostUC, err := buildHostUseCase(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for i := range m.Resources {
				node := &m.Resources[i]
				var probe struct {
					Kind string `yaml:"kind"`
				}
				if err := node.Decode(&probe); err != nil {
					return fmt.Errorf("resources[%d]: %w", i, err)
				}
				switch probe.Kind {
				case "zone":
					var in zone.ReconcileInput
					if err := node.Decode(&in); err != nil {
						return fmt.Errorf("resources[%d]: %w", i, err)
					}
					in.DryRun = dryRun
					ctx, cleanup := withCmdRunLogger(cmd.Context(), "zone.apply", in.Name)
					out, err := zoneUC.Reconcile(ctx, &in)
					cleanup(err)
					rec := zone.FailureResult(&in, err)
					if err == nil {
						rec = out.Result
					} else {
						failed++
					}
					recordRun(ctx, cmd, &history.RecordInput{
						Kind: "zone", Name: in.Name, State: in.State,
						Changed: rec.Changed, Failed: rec.Failed, DryRun: dryRun, Msg: rec.Msg,
					})
					if perr := printStream(cmd, rec); perr != nil {
						return perr
					}
				case "host":
					var in host.ReconcileInput
					if err := node.Decode(&in); err != nil {
						return fmt.Errorf("resources[%d]: %w", i, err)
					}
					in.DryRun = dryRun
					ctx, cleanup := withCmdRunLogger(cmd.Context(), "host.apply", in.Name)
					out, err := hostUC.Reconcile(ctx, &in)
					cleanup(err)
					rec := host.FailureResult(&in, err)
					if err == nil {
						rec = out.Result
					} else {
						failed++
					}
					recordRun(ctx, cmd, &history.RecordInput{
						Kind: "host", Name: in.Name, State: in.State,
						Changed: rec.Changed, Failed: rec.Failed, DryRun: dryRun, Msg: rec.Msg,
					})
					if perr := printStream(cmd, rec); perr != nil {
						return perr
					}
				default:
					return fmt.Errorf("resources[%d]: unknown kind %q", i, probe.Kind)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d resources failed", failed, len(m.Resources))
			}
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Manifest file path, or - for stdin")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Report plans without applying them")
	return c
}
