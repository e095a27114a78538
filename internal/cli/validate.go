package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pomgen/internal/app"
)

type validateOptions struct {
	Descriptor      string
	Profiles        []string
	NoSnapshotCheck bool
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the project descriptor without writing output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "project.yaml", "Project descriptor path")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Extra profiles to include in the test-scope view")
	cmd.Flags().BoolVar(&opts.NoSnapshotCheck, "no-snapshot-check", false, "Disable the snapshot dependency guard")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("no_snapshot_check", cmd.Flags().Lookup("no-snapshot-check"))

	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		Profiles:       resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
		AllowSnapshots: resolveBool(cmd, opts.NoSnapshotCheck, "no_snapshot_check", "no-snapshot-check"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("descriptor ok: %s\n", result.ProjectName)
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

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value || viper.GetBool(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
