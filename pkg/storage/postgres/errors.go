package postgres

import (
	"arbeit/pkg/storage"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueConstraints maps unique indexes from migrations/ to the field reported
// in storage.DuplicateError.
var uniqueConstraints = map[string]string{ //nolint: gochecknoglobals
	"users_username_uidx":           storage.FieldUsername,
	"businesses_bid_key":            storage.FieldBID,
	"businesses_company_email_uidx": storage.FieldCompanyEmail,
	"jobs_job_id_key":               storage.FieldJobID,
	"applications_user_job_uidx":    storage.FieldApplication,
}

// asDuplicate converts a unique violation into a *storage.DuplicateError and
// returns any other error untouched.
func asDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	field, ok := uniqueConstraints[pgErr.ConstraintName]
	if !ok {
		field = pgErr.ConstraintName
	}

	return &storage.DuplicateError{Field: field, Err: err}
}
