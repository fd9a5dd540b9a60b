package persist

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

type Transaction interface {
	Insert(list ...interface{}) error
}

type InsertFunc func(...interface{}) error

func (f InsertFunc) Insert(list ...interface{}) error {
	return f(list...)
}

// InsertIgnoringDupes decorates a transaction so re-archiving a course the
// store has already seen becomes a no-op instead of a constraint failure.
func InsertIgnoringDupes(t Transaction) Transaction {
	return InsertFunc(func(list ...interface{}) error {
		err := t.Insert(list...)
		var sqliteError sqlite3.Error
		if errors.As(err, &sqliteError) {
			if sqliteError.ExtendedCode == sqlite3.ErrConstraintUnique {
				return nil // silently ignore
			}
		}
		return err
	})
}
