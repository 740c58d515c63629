package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-scaffold/internal/settings"
)

// NewCmd creates `seshat config` with its init and check subcommands.
// The shared --configs flag is scoped to the returned command tree.
func NewCmd() *cobra.Command {
	var (
		flagDir   string
		flagForce bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the scaffold config files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			written, err := settings.InitFiles(flagDir, flagForce)
			if err != nil {
				return err
			}
			for _, p := range written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the config files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if _, err := settings.NewProvider(flagDir); err != nil {
				return err
			}
			// Success output must be a single JSON line.
			fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagDir, "configs", settings.DefaultDir, "Path to the config directory")
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing config files")
	cmd.AddCommand(initCmd)
	cmd.AddCommand(checkCmd)

	return cmd
}
