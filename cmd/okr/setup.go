package main

import (
	"fmt"

	"github.com/openokr/okr/storage"
	"github.com/openokr/okr/storage/sqlite/zombiezen"
)

func NewOkrRepository(p *Pool, path string) (storage.OkrRepository, error) {
	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateOkrTables(pool); err != nil {
		return nil, fmt.Errorf("failed to create okrs table: %w", err)
	}

	return zombiezen.NewOkrStore(pool), nil
}
