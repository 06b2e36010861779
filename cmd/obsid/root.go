package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"obsid/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var jsonFlag bool
	var controllersFlag bool

	ctx := newCommandContext(&configFlag, &jsonFlag, &controllersFlag)

	rootCmd := &cobra.Command{
		Use:           "obsid",
		Short:         "Pack and unpack Rubin observation identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(logging.WithRunID(cmd.Context(), uuid.NewString()))
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&controllersFlag, "controllers", false, "Round-trip controller codes (full alphabet, eight slots)")

	rootCmd.AddCommand(newPackCommand(ctx))
	rootCmd.AddCommand(newUnpackCommand(ctx))
	rootCmd.AddCommand(newComposeCommand(ctx))
	rootCmd.AddCommand(newDecomposeCommand(ctx))
	rootCmd.AddCommand(newBitsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
