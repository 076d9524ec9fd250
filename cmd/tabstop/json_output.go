package main

import (
	"encoding/json"
	"io"
)

// writeJSON renders v as two-space-indented JSON with a trailing
// newline, so piped output stays line-terminated.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
