package main

import (
	"os"

	"github.com/openokr/okr/okr"
	"github.com/openokr/okr/render"
)

func exportCommand(opts ExportOptions, ui UI) error {
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

	var okrs []okr.OKR
	for _, meta := range metas {
		record, err := repo.Read(meta.Id)
		if err != nil {
			return err
		}
		okrs = append(okrs, record)
	}

	out, err := os.Create(opts.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return render.NewJSONRenderer(out).Render(okrs)
}
