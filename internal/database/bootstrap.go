package database

import "context"

// Schema for the grandeur table.  The statement is idempotent, so running
// bootstrap against an already-provisioned database is a no-op.
const createGrandeurTable = `
CREATE TABLE IF NOT EXISTS grandeur (
	id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
	name         VARCHAR(255)    NOT NULL,
	email        VARCHAR(255)    NOT NULL,
	phone_number VARCHAR(10)     NOT NULL,
	created_at   DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the backing table when it does not exist yet.
// It must succeed before the service starts accepting writes.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createGrandeurTable)
	return err
}
