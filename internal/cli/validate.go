package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linfen0/uv-snapshot-cli/internal/app"
)

type validateOptions struct {
	Base     string
	UvBinary string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a base pyproject manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Base, "base", "pyproject.toml", "Base pyproject.toml path")
	cmd.Flags().StringVar(&opts.UvBinary, "uv-bin", "uv", "uv binary to query the environment with")
	_ = viper.BindPFlag("base", cmd.Flags().Lookup("base"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := app.NewService(resolveString(cmd, opts.UvBinary, "uv_bin", "uv-bin"))
	result, err := service.Validate(ctx, app.ValidateRequest{
		BasePath: resolveString(cmd, opts.Base, "base", "base"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s (%d dependencies)\n", result.ProjectName, result.DependencyCount)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
