package doctor

import (
	"encoding/json"
	"fmt"
	"io"
)

// printReport writes the report as a single JSON line, or indented when
// pretty is requested.
func printReport(w io.Writer, rep Report, pretty bool) error {
	if pretty {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
