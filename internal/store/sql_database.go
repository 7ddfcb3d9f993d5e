package store

import (
	"github.com/achabill/blog/migrations"
)

// Migrate applies all embedded goose migrations against the wrapped
// connection pool.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
