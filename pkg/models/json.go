package models

import (
	"encoding/json"
	"io"
)

// JSONEncoder returns an indented encoder for human-facing CLI output.
func JSONEncoder(w io.Writer) *json.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e
}
