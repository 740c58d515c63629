package settings

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// CUE schemas for the config documents. The structs are open: unknown
// keys pass through untouched, wrong types and out-of-range enums fail.
const (
	globalSchema = `
appName:   string & !=""
logLevel:  "debug" | "info" | "warn" | "error"
logFormat: "text" | "json"
`

	runlogSchema = `
enabled:  bool
dir:      string & !=""
runName?: string
`
)

// validateAndDecode unifies the merged document with its schema,
// validates the result and decodes it into out.
func validateAndDecode(name, schema string, doc map[string]any, out any) error {
	ctx := cuecontext.New()
	sv := ctx.CompileString(schema)
	if err := sv.Err(); err != nil {
		return fmt.Errorf("invalid schema for %s: %v", name, err)
	}
	dv := ctx.Encode(doc)
	if err := dv.Err(); err != nil {
		return fmt.Errorf("invalid config %s: %v", name, err)
	}
	unified := sv.Unify(dv)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config %s: %v", name, err)
	}
	if err := unified.Decode(out); err != nil {
		return fmt.Errorf("invalid config %s: %v", name, err)
	}
	return nil
}
