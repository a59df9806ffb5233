package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgresDuplicate распознает нарушение уникального ограничения.
func postgresDuplicate(err error) bool {
	return postgresCode(err, "23505")
}

// postgresForeignKey распознает нарушение внешнего ключа.
func postgresForeignKey(err error) bool {
	return postgresCode(err, "23503")
}

func postgresCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
