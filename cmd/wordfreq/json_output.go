package main

import (
	"encoding/json"
	"io"
)

// emitJSON writes v to w as two-space-indented JSON, newline-terminated.
// Used by --json for both the result snapshot and the empty-result notice.
func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
