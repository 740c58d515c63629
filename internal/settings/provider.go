package settings

import (
	"os"

	"github.com/joho/godotenv"
)

// Provider loads all settings once and hands them out to the rest of
// the application. Construct it at the call site and pass it along;
// there is no package-level instance.
type Provider struct {
	global Global
	runlog RunLog
}

// NewProvider reads .env into the environment when present, then loads
// and validates every config document under dir.
func NewProvider(dir string) (*Provider, error) {
	loadDotenv()

	g, err := LoadGlobal(dir)
	if err != nil {
		return nil, err
	}
	r, err := LoadRunLog(dir)
	if err != nil {
		return nil, err
	}
	return &Provider{global: g, runlog: r}, nil
}

// Global returns the application-wide settings.
func (p *Provider) Global() Global { return p.global }

// RunLog returns the run-recorder settings.
func (p *Provider) RunLog() RunLog { return p.runlog }

// loadDotenv loads a .env file from the working directory. Absence is
// fine; values already set in the environment win.
func loadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}
