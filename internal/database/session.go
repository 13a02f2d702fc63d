package database

import (
	"context"
	"database/sql"

	log "github.com/sirupsen/logrus"
)

// WithinTx runs fn inside a single transaction: commit when fn returns
// nil, roll back otherwise.  The pooled connection is released on every
// exit path.  Repositories reach storage exclusively through this scope,
// so a failed request never leaves a half-written row behind.
func (s *Store) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			log.WithField("err", rbErr).Error("transaction rollback failed")
		}
		return err
	}
	return tx.Commit()
}
