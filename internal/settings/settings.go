// Package settings loads the scaffold settings from YAML files under a
// config directory, layered with environment overrides. Precedence,
// highest first: environment variables (SESHAT_*), YAML file values,
// built-in defaults. A .env file, when present, is loaded into the
// environment before anything else. Every merged document is validated
// against a CUE schema before use; unknown keys are tolerated.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Global holds application-wide settings from configs/global.yaml.
type Global struct {
	AppName   string `json:"appName"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// RunLog holds run-recorder settings from configs/runlog.yaml.
type RunLog struct {
	Enabled bool   `json:"enabled"`
	Dir     string `json:"dir"`
	RunName string `json:"runName,omitempty"`
}

const (
	// DefaultDir is the config directory relative to the working directory.
	DefaultDir = "configs"

	globalFile = "global.yaml"
	runlogFile = "runlog.yaml"
)

func defaultGlobalDoc() map[string]any {
	return map[string]any{
		"appName":   "seshat",
		"logLevel":  "info",
		"logFormat": "text",
	}
}

func defaultRunLogDoc() map[string]any {
	return map[string]any{
		"enabled": false,
		"dir":     "runlogs",
	}
}

// LoadGlobal loads, layers and validates the global settings from dir.
// A missing file is not an error; defaults apply.
func LoadGlobal(dir string) (Global, error) {
	doc := defaultGlobalDoc()
	if err := mergeYAMLFile(doc, filepath.Join(dir, globalFile)); err != nil {
		return Global{}, err
	}
	applyEnvString(doc, "appName", "SESHAT_APP_NAME")
	applyEnvString(doc, "logLevel", "SESHAT_LOG_LEVEL")
	applyEnvString(doc, "logFormat", "SESHAT_LOG_FORMAT")
	lowerField(doc, "logLevel")
	lowerField(doc, "logFormat")

	var g Global
	if err := validateAndDecode(globalFile, globalSchema, doc, &g); err != nil {
		return Global{}, err
	}
	return g, nil
}

// LoadRunLog loads, layers and validates the run-recorder settings from dir.
// A missing file is not an error; the recorder stays disabled by default.
func LoadRunLog(dir string) (RunLog, error) {
	doc := defaultRunLogDoc()
	if err := mergeYAMLFile(doc, filepath.Join(dir, runlogFile)); err != nil {
		return RunLog{}, err
	}
	applyEnvBool(doc, "enabled", "SESHAT_RUNLOG_ENABLED")
	applyEnvString(doc, "dir", "SESHAT_RUNLOG_DIR")
	applyEnvString(doc, "runName", "SESHAT_RUNLOG_RUN_NAME")

	var r RunLog
	if err := validateAndDecode(runlogFile, runlogSchema, doc, &r); err != nil {
		return RunLog{}, err
	}
	return r, nil
}

// mergeYAMLFile overlays the top-level keys of the YAML document at path
// onto doc. Missing files are skipped.
func mergeYAMLFile(doc map[string]any, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	loaded := map[string]any{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("invalid YAML in %s: %v", filepath.Base(path), err)
	}
	for k, v := range loaded {
		doc[k] = v
	}
	return nil
}

func applyEnvString(doc map[string]any, key, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		doc[key] = v
	}
}

func applyEnvBool(doc map[string]any, key, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			doc[key] = b
		} else {
			// Keep the raw string so schema validation reports it.
			doc[key] = v
		}
	}
}

func lowerField(doc map[string]any, key string) {
	if s, ok := doc[key].(string); ok {
		doc[key] = strings.ToLower(s)
	}
}
