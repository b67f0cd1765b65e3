package main

import "fmt"

func lsCommand(opts LsOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewOkrRepository(p, opts.Repo)
	if err != nil {
		return err
	}

	metas, err := repo.List()
	if err != nil {
		return err
	}

	for _, meta := range metas {
		fmt.Fprintf(ui.Out, "✍  %d %s\n", meta.Id, meta.Sentence)
	}

	return nil
}
