package repository

import (
	"context"
	"database/sql"

	"github.com/grandeurhq/form-service/internal/database"
	"github.com/grandeurhq/form-service/internal/model"
)

const (
	insertSubmission = `INSERT INTO grandeur (name, email, phone_number) VALUES (?,?,?)`
	selectSubmission = `SELECT id, name, email, phone_number, created_at FROM grandeur WHERE id=? LIMIT 1`
)

// SubmissionRepo persists validated form submissions.
type SubmissionRepo struct {
	store *database.Store
}

func NewSubmissionRepo(store *database.Store) *SubmissionRepo {
	return &SubmissionRepo{store: store}
}

// Create inserts one submission and reads the stored row back, so the
// returned value carries the identifier and timestamp assigned by the
// database.  Insert and read-back share one transaction: either the full
// row becomes visible or nothing does.
func (r *SubmissionRepo) Create(ctx context.Context, name, email, phoneNumber string) (model.Submission, error) {
	var sub model.Submission
	err := r.store.WithinTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertSubmission, name, email, phoneNumber)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, selectSubmission, id).
			Scan(&sub.ID, &sub.Name, &sub.Email, &sub.PhoneNumber, &sub.CreatedAt)
	})
	if err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}
