package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/openokr/okr/okr"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

var placeholderRe = regexp.MustCompile(`\{([AP]\d+)\}`)

// Renderer pretty-prints OKR records for the terminal.
type Renderer struct {
	HasColor bool

	W io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w}
}

// OKR prints one record: the sentence, its entities and its predicates
// with both the raw and the substituted template.
func (r *Renderer) OKR(o *okr.OKR) {
	fmt.Fprintf(r.W, "✍  %s\n", o.Sentence)

	for _, sym := range sortedKeys(o.Entities) {
		ent := o.Entities[sym]
		fmt.Fprintf(r.W, "  %4s %s %v\n", r.color(sym, Green256), ent.Text, ent.Indices)
	}

	predSyms := make([]string, 0, len(o.Predicates))
	for sym := range o.Predicates {
		predSyms = append(predSyms, sym)
	}
	okr.SortSymbols(predSyms)

	for _, sym := range predSyms {
		pred := o.Predicates[sym]
		fmt.Fprintf(r.W, "  %4s %-30s %s\n", r.color(sym, Yellow256), pred.Template, r.color(r.Resolve(o, pred.Template), Grey256))
	}
}

// Resolve substitutes each {symbol} placeholder in a template with the
// referenced entity text or bare predicate text.
func (r *Renderer) Resolve(o *okr.OKR, template string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		sym := strings.Trim(m, "{}")
		if ent, ok := o.Entities[sym]; ok {
			return ent.Text
		}
		if pred, ok := o.Predicates[sym]; ok {
			return pred.Bare.Text
		}
		return m
	})
}

func (r *Renderer) color(s, code string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}

func sortedKeys(m map[string]okr.Span) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	okr.SortSymbols(keys)
	return keys
}
