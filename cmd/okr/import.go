package main

import (
	"fmt"

	"github.com/openokr/okr/conf"
	"github.com/openokr/okr/file"
	"github.com/openokr/okr/okr"

	"github.com/gosuri/uiprogress"
)

func importCommand(opts ImportOptions, ui UI) error {
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

	p := &Pool{}
	defer p.Close()

	repo, err := NewOkrRepository(p, opts.Repo)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading sentences from %s...\n", opts.In)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(sentences))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	err = buildSentences(sentences, svc, rec, b, ui, func(o okr.OKR) error {
		if _, err := repo.Write(o); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write okr for %q: %w", o.Sentence, err)
		}
		count++
		bar.Incr()
		return nil
	})
	uiprogress.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d okrs from %s to %s\n", count, opts.In, opts.Repo)
	return nil
}
