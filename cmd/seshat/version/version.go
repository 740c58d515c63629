package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-scaffold/internal/buildinfo"
)

// NewCmd creates `seshat version`.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if flagShort || !flagJSON {
				// Stable output for scripts: exactly one line.
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "seshat %s\n", buildinfo.Summary())
				return err
			}

			// If JSON is requested explicitly, print a diagnostic object to
			// stdout and a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "seshat version: %s\n", buildinfo.Summary())
			out := map[string]any{
				"version":   buildinfo.Version,
				"commit":    buildinfo.Commit,
				"date":      buildinfo.Date,
				"built_by":  buildinfo.BuiltBy,
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			}
			return encodeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")

	return cmd
}
