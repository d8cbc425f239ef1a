package store

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Init creates the application tables. The unique index on users.email is the
// authoritative duplicate-registration guard.
func Init(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*Bank)(nil),
		(*Title)(nil),
		(*About)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "could not create table")
		}
	}

	return nil
}
