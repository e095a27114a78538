package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pomgen/internal/app"
)

type generateOptions struct {
	Descriptor      string
	Output          string
	Properties      string
	Profiles        []string
	NoSnapshotCheck bool
	NoNotice        bool
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate pom.xml and pom.properties from the project descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "project.yaml", "Project descriptor path")
	cmd.Flags().StringVar(&opts.Output, "output", "pom.xml", "POM output path (relative paths anchor at the project root)")
	cmd.Flags().StringVar(&opts.Properties, "properties", "pom.properties", "Properties output path")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Extra profiles to include in the test-scope view")
	cmd.Flags().BoolVar(&opts.NoSnapshotCheck, "no-snapshot-check", false, "Disable the snapshot dependency guard")
	cmd.Flags().BoolVar(&opts.NoNotice, "no-notice", false, "Omit the autogenerated notice comment")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("properties", cmd.Flags().Lookup("properties"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("no_snapshot_check", cmd.Flags().Lookup("no-snapshot-check"))
	_ = viper.BindPFlag("no_notice", cmd.Flags().Lookup("no-notice"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		OutputPath:     resolveString(cmd, opts.Output, "output", "output"),
		PropertiesPath: resolveString(cmd, opts.Properties, "properties", "properties"),
		Profiles:       resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
		AllowSnapshots: resolveBool(cmd, opts.NoSnapshotCheck, "no_snapshot_check", "no-snapshot-check"),
		OmitNotice:     resolveBool(cmd, opts.NoNotice, "no_notice", "no-notice"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", result.POMPath)
	fmt.Printf("wrote %s\n", result.PropertiesPath)
	return nil
}
