package postgre

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrInvalidUUID marks malformed UUID input before it reaches the database.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// uniqueViolation is the Postgres error code for unique constraint conflicts.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint conflict.
// The dedup ledger uses this as its insert-or-detect-conflict primitive.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
