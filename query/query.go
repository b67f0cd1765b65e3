package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/openokr/okr/ner"
	"github.com/openokr/okr/okr"
	"github.com/openokr/okr/parser"
	"github.com/openokr/okr/render"
	"github.com/openokr/okr/storage"

	"github.com/c-bata/go-prompt"
)

// Handler runs the interactive shell: raw sentences in, rendered OKR
// records out.
type Handler struct {
	Parser     parser.Service
	Recognizer ner.Recognizer
	Builder    *okr.Builder
	Renderer   *render.Renderer

	// Repo is optional; when present, stored sentences feed the prompt
	// completion.
	Repo storage.OkrReader
}

func NewHandler(svc parser.Service, rec ner.Recognizer, b *okr.Builder, r *render.Renderer, repo storage.OkrReader) *Handler {
	return &Handler{
		Parser:     svc,
		Recognizer: rec,
		Builder:    b,
		Renderer:   r,
		Repo:       repo,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+X: toggle color, type quit to exit")

	var suggestions []string
	if h.Repo != nil {
		stored, err := h.Repo.Sentences("")
		if err != nil {
			fmt.Printf("Error listing stored sentences: %v\n", err)
		} else {
			suggestions = stored
		}
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      ✍  ", h.completer(suggestions),
			prompt.OptionTitle("okr query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Println("Color set to " + fmt.Sprintf("%t", h.Renderer.HasColor))
				}}),
		)

		if in == "quit" {
			return nil
		}

		sentence := strings.TrimSpace(in)
		if sentence == "" || strings.HasPrefix(sentence, "#") {
			continue
		}

		history = append(history, in)

		ctx := context.Background()
		tree, graph, err := h.Parser.Parse(ctx, sentence)
		if err != nil {
			fmt.Printf("Error parsing sentence: %v\n", err)
			continue
		}

		spans, err := h.Recognizer.Recognize(ctx, sentence)
		if err != nil {
			fmt.Printf("Error tagging entities: %v\n", err)
			continue
		}

		record, err := h.Builder.Build(tree, graph, spans)
		if err != nil {
			fmt.Printf("Error building okr: %v\n", err)
			continue
		}

		h.Renderer.OKR(record)
	}
}

func (h *Handler) completer(sentences []string) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		text := d.TextBeforeCursor()
		if len(text) < 2 {
			return nil
		}

		var suggests []prompt.Suggest
		for _, s := range sentences {
			suggests = append(suggests, prompt.Suggest{Text: s})
		}
		return prompt.FilterContains(suggests, text, true)
	}
}
