package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linfen0/uv-snapshot-cli/internal/app"
)

type snapshotOptions struct {
	Base         string
	Requirements string
	Output       string
	UvBinary     string
	IndexTable   string
	Prune        bool
}

func newSnapshotCommand() *cobra.Command {
	opts := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Snapshot the active environment into a pyproject manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Base, "base", "", "Base pyproject.toml path")
	cmd.Flags().StringVar(&opts.Requirements, "requirements", "", "Requirements file path")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "pyproject.snapshot.toml", "Output manifest path")
	cmd.Flags().StringVar(&opts.UvBinary, "uv-bin", "uv", "uv binary to query the environment with")
	cmd.Flags().StringVar(&opts.IndexTable, "index-table", "", "YAML file with extra variant index mappings")
	cmd.Flags().BoolVar(&opts.Prune, "prune", false, "Drop transitive user-downloaded packages from the snapshot")
	_ = viper.BindPFlag("base", cmd.Flags().Lookup("base"))
	_ = viper.BindPFlag("requirements", cmd.Flags().Lookup("requirements"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("uv_bin", cmd.Flags().Lookup("uv-bin"))
	_ = viper.BindPFlag("index_table", cmd.Flags().Lookup("index-table"))
	_ = viper.BindPFlag("prune", cmd.Flags().Lookup("prune"))
	return cmd
}

func runSnapshot(ctx context.Context, cmd *cobra.Command, opts snapshotOptions) error {
	service := app.NewService(resolveString(cmd, opts.UvBinary, "uv_bin", "uv-bin"))
	result, err := service.Snapshot(ctx, app.SnapshotRequest{
		BasePath:         resolveString(cmd, opts.Base, "base", "base"),
		RequirementsPath: resolveString(cmd, opts.Requirements, "requirements", "requirements"),
		OutputPath:       resolveString(cmd, opts.Output, "output", "output"),
		IndexTablePath:   resolveString(cmd, opts.IndexTable, "index_table", "index-table"),
		Prune:            resolveBool(cmd, opts.Prune, "prune", "prune"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("snapshot written: %s\n", result.OutputPath)
	for _, summary := range result.Report.Groups {
		fmt.Printf("- %s: %d packages\n", summary.Name, summary.Count)
	}
	if result.Report.Variant.IndexURL != "" {
		fmt.Printf("index override: %s -> %s\n", result.Report.Variant.Library, result.Report.Variant.IndexURL)
	}
	for _, warning := range result.Report.Warnings {
		fmt.Printf("warning (%s): %s\n", warning.Kind, warning.Detail)
	}
	return nil
}
