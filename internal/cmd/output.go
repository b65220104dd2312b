package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// fetchTimeout bounds the one-shot fetches of the prs and builds commands
const fetchTimeout = 60 * time.Second

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// orDash returns s, or "-" when s is empty
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
