package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/openokr/okr/conf"
	"github.com/openokr/okr/file"
	"github.com/openokr/okr/ner"
	"github.com/openokr/okr/okr"
	"github.com/openokr/okr/parser"
	"github.com/openokr/okr/query"
	"github.com/openokr/okr/render"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := runCommand(cmd, args, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "okr: %v\n", err)
}

func runCommand(cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("okr", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "parse":
		opts, err := parseParseArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return parseCommand(opts, ui)

	case "query":
		opts, err := parseQueryArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return queryCommand(opts, ui)

	case "import":
		opts, err := parseImportArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return importCommand(opts, ui)

	case "export":
		opts, err := parseExportArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return exportCommand(opts, ui)

	case "ls":
		opts, err := parseLsArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return lsCommand(opts, ui)

	case "version":
		return versionCommand(ui)

	case "bash":
		return bashCommand(ui)

	case "complete":
		return completeCommand(ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

// services builds the two collaborator clients from the configuration.
func services(cfg conf.Config) (parser.Service, ner.Recognizer) {
	return parser.NewClient(cfg.ParserURL), ner.NewClient(cfg.NerURL)
}

// builderOptions merges config defaults with command-line switches.
func builderOptions(cfg conf.Config, implicits, zeroArgs, conj bool) okr.Options {
	return okr.Options{
		Implicits: implicits || cfg.Implicits,
		ZeroArgs:  zeroArgs || cfg.ZeroArgs,
		Conj:      conj || cfg.Conj,
	}
}

// buildSentences parses and flattens each sentence, reporting failed
// lines to the UI and continuing with the next: sentences are
// independent, and a line that cannot be analyzed should not abort the
// whole file.
func buildSentences(sentences []string, svc parser.Service, rec ner.Recognizer, b *okr.Builder, ui UI, onOkr func(okr.OKR) error) error {
	ctx := context.Background()

	for _, sentence := range sentences {
		tree, graph, err := svc.Parse(ctx, sentence)
		if err != nil {
			fmt.Fprintf(ui.Err, "✍  skipping %q: %v\n", sentence, err)
			continue
		}

		spans, err := rec.Recognize(ctx, sentence)
		if err != nil {
			fmt.Fprintf(ui.Err, "✍  skipping %q: %v\n", sentence, err)
			continue
		}

		record, err := b.Build(tree, graph, spans)
		if err != nil {
			fmt.Fprintf(ui.Err, "✍  skipping %q: %v\n", sentence, err)
			continue
		}

		if err := onOkr(*record); err != nil {
			return err
		}
	}

	return nil
}

func parseCommand(opts ParseOptions, ui UI) error {
	cfg, err := conf.Load(opts.Conf)
	if err != nil {
		return err
	}

	svc, rec := services(cfg)
	b := okr.NewBuilder(builderOptions(cfg, opts.Implicits, opts.ZeroArgs, opts.Conj))

	sentences, err := file.ReadSentences(opts.In)
	if err != nil {
		return err
	}

	var okrs []okr.OKR
	err = buildSentences(sentences, svc, rec, b, ui, func(o okr.OKR) error {
		okrs = append(okrs, o)
		return nil
	})
	if err != nil {
		return err
	}

	out, err := os.Create(opts.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return render.NewJSONRenderer(out).Render(okrs)
}

func queryCommand(opts QueryOptions, ui UI) error {
	cfg, err := conf.Load(opts.Conf)
	if err != nil {
		return err
	}

	svc, rec := services(cfg)
	b := okr.NewBuilder(builderOptions(cfg, opts.Implicits, opts.ZeroArgs, opts.Conj))

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	repoPath := opts.Repo
	if repoPath == "" {
		repoPath = cfg.Repository
	}

	h := query.NewHandler(svc, rec, b, r, nil)
	if repoPath != "" {
		p := &Pool{}
		defer p.Close()

		repo, err := NewOkrRepository(p, repoPath)
		if err != nil {
			return err
		}
		h.Repo = repo
	}

	return h.Run()
}
