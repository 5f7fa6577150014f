package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linfen0/uv-snapshot-cli/internal/app"
)

type inspectOptions struct {
	Snapshot string
	UvBinary string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a snapshot manifest's groups and index config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "pyproject.snapshot.toml", "Snapshot manifest path")
	cmd.Flags().StringVar(&opts.UvBinary, "uv-bin", "uv", "uv binary to query the environment with")
	_ = viper.BindPFlag("snapshot", cmd.Flags().Lookup("snapshot"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := app.NewService(resolveString(cmd, opts.UvBinary, "uv_bin", "uv-bin"))
	result, err := service.Inspect(app.InspectRequest{
		Path: resolveString(cmd, opts.Snapshot, "snapshot", "snapshot"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("project: %s\n", result.ProjectName)
	fmt.Printf("dependencies: %d\n", len(result.Core))
	if len(result.Core) > 0 {
		fmt.Printf("  %s\n", strings.Join(result.Core, ", "))
	}
	for _, group := range result.Groups {
		fmt.Printf("- %s: %d packages\n", group.Name, group.Count)
		if len(group.Packages) > 0 {
			fmt.Printf("  %s\n", strings.Join(group.Packages, ", "))
		}
	}
	if len(result.Sources) > 0 {
		names := make([]string, 0, len(result.Sources))
		for name := range result.Sources {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("sources:")
		for _, name := range names {
			fmt.Printf("- %s -> %s\n", name, result.Sources[name])
		}
	}
	for _, index := range result.Indexes {
		fmt.Printf("index %s: %s\n", index.Name, index.URL)
	}
	return nil
}
