package commands

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/spf13/cobra"
)

// ProbeResult is the output of the probe command.
type ProbeResult struct {
	Target  string `json:"target" yaml:"target"`
	Dialect string `json:"dialect" yaml:"dialect"`
	Version string `json:"version" yaml:"version"`
	Major   int    `json:"major" yaml:"major"`
}

// NewProbeCommand creates the probe command.
func NewProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Query the configured target for its server version",
		Long: `Connect to the configured target database and report its server version
and the major version used by version-dependent type rules.

The target is read from the target section of leaptype.yaml or from
LEAPTYPE_TARGET__* environment variables.`,
		Example: `  # leaptype.yaml
  #   target:
  #     type: postgres
  #     host: localhost
  #     database: app
  #     user: ${PGUSER}
  leaptype probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := GetCommandContext(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runProbe(ctx, cc)
		},
	}
}

func runProbe(ctx context.Context, cc *CommandContext) error {
	a, err := cc.connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	res, err := probeAdapter(ctx, cc.Cfg.Target.Type, a)
	if err != nil {
		return err
	}

	r := cc.Renderer
	if ok, err := r.Structured(res); ok {
		return err
	}
	r.StatusLine(res.Target, "success", res.Version)
	r.Printf("dialect %s, major version %d\n", res.Dialect, res.Major)
	return nil
}

func probeAdapter(ctx context.Context, target string, a adapter.Adapter) (ProbeResult, error) {
	version, err := a.ServerVersion(ctx)
	if err != nil {
		return ProbeResult{}, err
	}
	major, err := adapter.ParseMajorVersion(version)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("failed to parse server version: %w", err)
	}
	return ProbeResult{
		Target:  target,
		Dialect: string(a.Kind()),
		Version: version,
		Major:   major,
	}, nil
}
