package demo

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-scaffold/internal/compute"
	"github.com/flarebyte/seshat-scaffold/internal/ctxlog"
	"github.com/flarebyte/seshat-scaffold/internal/runlog"
	"github.com/flarebyte/seshat-scaffold/internal/settings"
)

// NewCmd creates `seshat demo`, the scaffold's example program: add the
// supplied number to one random sample and print the sum. Flag state is
// local to the returned command.
func NewCmd() *cobra.Command {
	var (
		flagNumber  float64
		flagConfigs string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Add a number to a random sample and print the sum",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags and required-flag validation have passed; from here
			// on, failures print as a single line without usage.
			cmd.SilenceUsage = true

			provider, err := settings.NewProvider(flagConfigs)
			if err != nil {
				return err
			}
			logger := ctxlog.New(provider.Global(), cmd.ErrOrStderr())

			started := time.Now()
			rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			res := compute.Add(flagNumber, rng)
			logger.Debug("computed result", "input", res.Input, "sample", res.Sample, "total", res.Total)

			// The result is exactly one numeric line on stdout.
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(res.Total, 'f', -1, 64)); err != nil {
				return err
			}

			recorder := runlog.New(provider.RunLog())
			if recorder.Enabled() {
				rec := recorder.NewRecord(started, res)
				if path, err := recorder.Log(rec); err != nil {
					// Archiving never changes the printed result or the exit code.
					logger.Warn("run archive failed", "error", err)
				} else {
					logger.Info("run archived", "run", rec.RunName, "path", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&flagNumber, "number", 0, "Number to add to the random sample (required)")
	_ = cmd.MarkFlagRequired("number")
	cmd.Flags().StringVar(&flagConfigs, "configs", settings.DefaultDir, "Path to the config directory")

	return cmd
}
