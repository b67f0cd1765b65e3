package render

import (
	"encoding/json"
	"io"

	"github.com/openokr/okr/okr"
)

// JSONRenderer writes OKR records as a JSON array to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the records as a JSON array.
func (r *JSONRenderer) Render(okrs []okr.OKR) error {
	if okrs == nil {
		okrs = []okr.OKR{}
	}
	return json.NewEncoder(r.W).Encode(okrs)
}
