package root

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-scaffold/cmd/seshat/config"
	"github.com/flarebyte/seshat-scaffold/cmd/seshat/demo"
	"github.com/flarebyte/seshat-scaffold/cmd/seshat/doctor"
	"github.com/flarebyte/seshat-scaffold/cmd/seshat/version"
)

// NewRootCmd creates the root command for seshat. Every subcommand is
// constructed fresh so no flag or silence state survives an execution.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seshat",
		Short: "CLI: A starter scaffold for Go command-line projects, named after the scribe goddess who keeps the records",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(demo.NewCmd())
	cmd.AddCommand(config.NewCmd())
	cmd.AddCommand(doctor.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
