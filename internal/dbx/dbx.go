// Package dbx holds tiny database/sql helpers shared by repositories: the
// DBTX interface satisfied by both *sql.DB and *sql.Tx, and a transaction
// wrapper.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the repositories use, so that a repo
// can run against either a plain handle or an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit on nil error, rollback on
// error or panic (the panic is rethrown).
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
