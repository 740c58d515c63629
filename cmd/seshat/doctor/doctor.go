package doctor

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/flarebyte/seshat-scaffold/internal/runlog"
	"github.com/flarebyte/seshat-scaffold/internal/settings"
)

// Check is one diagnostic probe result.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report is the full doctor output.
type Report struct {
	OK     bool    `json:"ok"`
	Checks []Check `json:"checks"`
}

type doctorExitError struct {
	msg string
}

func (e doctorExitError) Error() string { return e.msg }
func (e doctorExitError) ExitCode() int { return 1 }

// NewCmd creates `seshat doctor`.
func NewCmd() *cobra.Command {
	var (
		flagDir    string
		flagPretty bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the scaffold environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			rep := buildReport(flagDir)
			if err := printReport(cmd.OutOrStdout(), rep, flagPretty); err != nil {
				return err
			}
			if !rep.OK {
				return doctorExitError{msg: "doctor: one or more checks failed"}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDir, "configs", settings.DefaultDir, "Path to the config directory")
	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Pretty JSON report")

	return cmd
}

func buildReport(dir string) Report {
	checks := []Check{
		checkSettings(dir),
		checkDotenv(),
		checkGit(),
		{Name: "go", OK: true, Detail: runtime.Version()},
	}
	ok := true
	for _, c := range checks {
		if !c.OK {
			ok = false
		}
	}
	return Report{OK: ok, Checks: checks}
}

func checkSettings(dir string) Check {
	p, err := settings.NewProvider(dir)
	if err != nil {
		return Check{Name: "settings", OK: false, Detail: err.Error()}
	}
	g := p.Global()
	return Check{
		Name:   "settings",
		OK:     true,
		Detail: fmt.Sprintf("app=%s level=%s format=%s", g.AppName, g.LogLevel, g.LogFormat),
	}
}

// checkDotenv is informational: a .env file is optional.
func checkDotenv() Check {
	if _, err := os.Stat(".env"); err != nil {
		return Check{Name: "dotenv", OK: true, Detail: "no .env file"}
	}
	return Check{Name: "dotenv", OK: true, Detail: ".env present"}
}

// checkGit is informational: the scaffold works outside a repository,
// but run records only carry git metadata inside one.
func checkGit() Check {
	g := runlog.DetectGit(".")
	if g == nil {
		return Check{Name: "git", OK: true, Detail: "not inside a repository"}
	}
	detail := "commit=" + shortCommit(g.Commit)
	if g.Branch != "" {
		detail += " branch=" + g.Branch
	}
	return Check{Name: "git", OK: true, Detail: detail}
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
