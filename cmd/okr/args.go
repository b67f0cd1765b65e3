package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Option structs for subcommands that have flags
type ParseOptions struct {
	In        string
	Out       string
	Conf      string
	Implicits bool
	ZeroArgs  bool
	Conj      bool
}

type QueryOptions struct {
	Conf      string
	Repo      string
	NoColor   bool
	Implicits bool
	ZeroArgs  bool
	Conj      bool
}

type ImportOptions struct {
	In        string
	Repo      string
	Conf      string
	Implicits bool
	ZeroArgs  bool
	Conj      bool
}

type ExportOptions struct {
	Repo string
	Out  string
}

type LsOptions struct {
	Repo string
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s <command> [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nCommands:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  parse    Read sentences from a file, write their OKR records as a JSON array\n")
		_, _ = fmt.Fprintf(fs.Output(), "  query    Interactive shell: type a raw sentence, get its OKR\n")
		_, _ = fmt.Fprintf(fs.Output(), "  import   Parse a sentence file and store the records in a repository\n")
		_, _ = fmt.Fprintf(fs.Output(), "  export   Dump stored records as a JSON array\n")
		_, _ = fmt.Fprintf(fs.Output(), "  ls       List stored sentences\n")
		_, _ = fmt.Fprintf(fs.Output(), "  version  Show version\n")
		_, _ = fmt.Fprintf(fs.Output(), "  bash     Print the bash completion script\n")
	}
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("okr", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

// builderFlags registers the predicate filter switches shared by the
// parse, query and import commands.
func builderFlags(fs *flag.FlagSet, implicits, zeroArgs, conj *bool) {
	fs.BoolVar(implicits, "implicits", false, "Keep implicit predicates")
	fs.BoolVar(zeroArgs, "zero-args", false, "Keep predicates without arguments")
	fs.BoolVar(conj, "conj", false, "Keep conjunction predicates")
}

func parseFlagSet(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseParseArgs(args []string, ui UI) (ParseOptions, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ParseOptions
	fs.StringVar(&opts.In, "in", "", "Input file, one raw sentence per line")
	fs.StringVar(&opts.Out, "out", "", "Output JSON file")
	fs.StringVar(&opts.Conf, "conf", "", "Config file path")
	builderFlags(fs, &opts.Implicits, &opts.ZeroArgs, &opts.Conj)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s parse --in FILE --out FILE [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse each sentence of the input file and write the OKR records as a JSON array.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Blank lines and lines starting with # are skipped.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.In == "" || opts.Out == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("parse command needs --in and --out")
	}

	return opts, nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.StringVar(&opts.Conf, "conf", "", "Config file path")
	fs.StringVar(&opts.Repo, "repo", os.Getenv("OKR_REPO_PATH"), "Path to the OKR SQLite repository")
	fs.StringVar(&opts.Repo, "r", os.Getenv("OKR_REPO_PATH"), "alias for -repo")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	builderFlags(fs, &opts.Implicits, &opts.ZeroArgs, &opts.Conj)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Start an interactive shell expecting raw sentences.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.In, "in", "", "Input file, one raw sentence per line")
	fs.StringVar(&opts.Repo, "repo", os.Getenv("OKR_REPO_PATH"), "Path to the OKR SQLite repository")
	fs.StringVar(&opts.Repo, "r", os.Getenv("OKR_REPO_PATH"), "alias for -repo")
	fs.StringVar(&opts.Conf, "conf", "", "Config file path")
	builderFlags(fs, &opts.Implicits, &opts.ZeroArgs, &opts.Conj)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import --in FILE --repo DB [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse a sentence file and persist the OKR records.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.In == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("import command needs --in")
	}
	if opts.Repo == "" {
		return opts, errors.New("Repo path must be specified via -r or OKR_REPO_PATH")
	}

	return opts, nil
}

func parseExportArgs(args []string, ui UI) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.Repo, "repo", os.Getenv("OKR_REPO_PATH"), "Path to the OKR SQLite repository")
	fs.StringVar(&opts.Repo, "r", os.Getenv("OKR_REPO_PATH"), "alias for -repo")
	fs.StringVar(&opts.Out, "out", "", "Output JSON file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export --repo DB --out FILE\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Dump all stored OKR records as a JSON array.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.Out == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("export command needs --out")
	}
	if opts.Repo == "" {
		return opts, errors.New("Repo path must be specified via -r or OKR_REPO_PATH")
	}

	return opts, nil
}

func parseLsArgs(args []string, ui UI) (LsOptions, error) {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LsOptions
	fs.StringVar(&opts.Repo, "repo", os.Getenv("OKR_REPO_PATH"), "Path to the OKR SQLite repository")
	fs.StringVar(&opts.Repo, "r", os.Getenv("OKR_REPO_PATH"), "alias for -repo")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s ls [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List stored sentences.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlagSet(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.Repo == "" {
		return opts, errors.New("Repo path must be specified via -r or OKR_REPO_PATH")
	}

	return opts, nil
}
