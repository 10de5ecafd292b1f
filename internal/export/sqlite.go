package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/agentstation/bibliotheque/pkg/catalogs"
	"github.com/agentstation/bibliotheque/pkg/constants"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

const defaultTable = constants.DefaultExportTable

// toSQLite replaces the export table in the database at path with books.
// The position column keeps catalog order.
func (e *Exporter) toSQLite(ctx context.Context, books []catalogs.Book, path string) (int, error) {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.WrapIO("write", path, fmt.Errorf("begin export txn: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	table := quoteIdent(e.table)
	stmts := []string{
		"DROP TABLE IF EXISTS " + table,
		"CREATE TABLE " + table + ` (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			isbn TEXT NOT NULL,
			publication_year INTEGER NOT NULL
		)`,
		"CREATE INDEX " + quoteIdent(e.table+"_isbn") + " ON " + table + " (isbn)",
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, errors.WrapIO("write", path, fmt.Errorf("prepare schema: %w", err))
		}
	}

	insert, err := tx.PrepareContext(ctx, "INSERT INTO "+table+" (position, title, author, isbn, publication_year) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, errors.WrapIO("write", path, fmt.Errorf("prepare insert: %w", err))
	}
	defer func() { _ = insert.Close() }()

	for i, b := range books {
		if _, err := insert.ExecContext(ctx, i, b.Title, b.Author, b.ISBN, b.PublicationYear); err != nil {
			return 0, errors.WrapIO("write", path, fmt.Errorf("insert %q: %w", b.Title, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.WrapIO("write", path, fmt.Errorf("commit export: %w", err))
	}
	return len(books), nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapIO("open", path, fmt.Errorf("ping sqlite: %w", err))
	}
	return db, nil
}

func quoteIdent(name string) string {
	quoted := make([]byte, 0, len(name)+2)
	quoted = append(quoted, '"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' {
			quoted = append(quoted, '"')
		}
		quoted = append(quoted, name[i])
	}
	return string(append(quoted, '"'))
}
