package repositories

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is wrapped when the requested record, or a record it must
	// reference, does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrReferenced is wrapped when a delete is rejected because other records still point at the target.
	ErrReferenced = errors.New("record is still referenced")
	// ErrDuplicate is wrapped when a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate record")
)

// isForeignKeyViolation reports a rejected foreign key. The postgres dialector
// translates it to gorm.ErrForeignKeyViolated; sqlite returns its own error.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
