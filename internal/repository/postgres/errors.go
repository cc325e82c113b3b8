package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes translated at the repository boundary.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// Constraint names from migrations/001_init.sql.
const (
	constraintItemsStoreFK    = "items_store_id_fkey"
	constraintItemsPkey       = "items_pkey"
	constraintItemsTagsItemFK = "items_tags_item_id_fkey"
	constraintItemsTagsTagFK  = "items_tags_tag_id_fkey"
)

// pqError returns the *pq.Error in err's chain with the given code, if any.
func pqError(err error, code string) (*pq.Error, bool) {
	var perr *pq.Error
	if errors.As(err, &perr) && string(perr.Code) == code {
		return perr, true
	}
	return nil, false
}

func isUniqueViolation(err error) bool {
	_, ok := pqError(err, codeUniqueViolation)
	return ok
}

func isCheckViolation(err error) bool {
	_, ok := pqError(err, codeCheckViolation)
	return ok
}

func isNumericOutOfRange(err error) bool {
	_, ok := pqError(err, codeNumericOutOfRange)
	return ok
}

// foreignKeyConstraint returns the violated constraint name for a FK violation.
func foreignKeyConstraint(err error) (string, bool) {
	perr, ok := pqError(err, codeForeignKeyViolation)
	if !ok {
		return "", false
	}
	return perr.Constraint, true
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
