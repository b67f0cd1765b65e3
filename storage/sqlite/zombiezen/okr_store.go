package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openokr/okr/okr"
	"github.com/openokr/okr/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// OkrStore persists OKR records in SQLite, one row per sentence with
// the full record as a JSON payload.
type OkrStore struct {
	pool *sqlitex.Pool
}

var _ storage.OkrRepository = (*OkrStore)(nil)

func NewOkrStore(pool *sqlitex.Pool) *OkrStore {
	return &OkrStore{pool: pool}
}

func (s *OkrStore) List() ([]storage.Meta, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var metas []storage.Meta
	err = sqlitex.Execute(conn, "SELECT id, sentence FROM okrs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			metas = append(metas, storage.Meta{
				Id:       stmt.ColumnInt(0),
				Sentence: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return metas, nil
}

func (s *OkrStore) Read(id int) (okr.OKR, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return okr.OKR{}, err
	}
	defer s.pool.Put(conn)

	var record okr.OKR
	found := false

	err = sqlitex.Execute(conn, "SELECT payload FROM okrs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &record)
		},
	})
	if err != nil {
		return okr.OKR{}, err
	}
	if !found {
		return okr.OKR{}, fmt.Errorf("okr not found: %d", id)
	}

	return record, nil
}

func (s *OkrStore) Sentences(pattern string) ([]string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	query := "SELECT sentence FROM okrs ORDER BY id"
	opts := &sqlitex.ExecOptions{}
	if pattern != "" {
		query = "SELECT sentence FROM okrs WHERE sentence LIKE ? ORDER BY id"
		opts.Args = []interface{}{"%" + pattern + "%"}
	}

	var sentences []string
	opts.ResultFunc = func(stmt *sqlite.Stmt) error {
		sentences = append(sentences, stmt.ColumnText(0))
		return nil
	}

	if err := sqlitex.Execute(conn, query, opts); err != nil {
		return nil, err
	}
	return sentences, nil
}

func (s *OkrStore) Write(o okr.OKR) (int, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	payload, err := json.Marshal(o)
	if err != nil {
		return 0, err
	}

	err = sqlitex.Execute(conn, "INSERT INTO okrs (sentence, payload) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{o.Sentence, string(payload)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert okr: %w", err)
	}

	return int(conn.LastInsertRowID()), nil
}
