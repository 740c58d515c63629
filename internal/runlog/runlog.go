// Package runlog archives one JSON record per program invocation. It is
// the scaffold's stand-in for an experiment tracker: each record carries
// the computation fields plus host, version and git metadata so a run
// can be traced after the fact.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/flarebyte/seshat-scaffold/internal/buildinfo"
	"github.com/flarebyte/seshat-scaffold/internal/compute"
	"github.com/flarebyte/seshat-scaffold/internal/settings"
)

// Record describes a single archived run.
type Record struct {
	RunID      string         `json:"runId"`
	RunName    string         `json:"runName"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Host       string         `json:"host"`
	Version    string         `json:"version"`
	Result     compute.Result `json:"result"`
	Git        *Git           `json:"git,omitempty"`
}

// Recorder writes run records under the configured directory. A
// disabled recorder is a no-op.
type Recorder struct {
	cfg settings.RunLog
}

// New returns a Recorder for the given settings.
func New(cfg settings.RunLog) *Recorder {
	return &Recorder{cfg: cfg}
}

// Enabled reports whether records will be written.
func (r *Recorder) Enabled() bool { return r.cfg.Enabled }

// NewRecord assembles a record for a finished computation. The run name
// comes from the settings when set, otherwise it is generated as
// run_<timestamp>_<shortid>. Git metadata is attached when the working
// directory is inside a repository; any git failure leaves it empty.
func (r *Recorder) NewRecord(started time.Time, res compute.Result) Record {
	id := uuid.New()
	name := r.cfg.RunName
	if name == "" {
		name = fmt.Sprintf("run_%s_%s", started.UTC().Format("20060102_150405"), id.String()[:6])
	}
	host, _ := os.Hostname()
	return Record{
		RunID:      id.String(),
		RunName:    name,
		StartedAt:  started.UTC(),
		FinishedAt: time.Now().UTC(),
		Host:       host,
		Version:    buildinfo.Summary(),
		Result:     res,
		Git:        DetectGit("."),
	}
}

// Log writes the record as <dir>/<runName>.json, creating parent
// directories. It returns the written path, or "" when disabled.
func (r *Recorder) Log(rec Record) (string, error) {
	if !r.cfg.Enabled {
		return "", nil
	}
	path := filepath.Join(r.cfg.Dir, rec.RunName+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create runlog dir: %w", err)
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
