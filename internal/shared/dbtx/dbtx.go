package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db whose statements run on tx. A nil tx
// returns db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.WithContext(context.Background())
	bound.Statement.ConnPool = tx
	return bound
}

// SQLDB exposes the pool behind a gorm handle for services that manage
// transactions with database/sql.
func SQLDB(db *gorm.DB) (*sql.DB, error) {
	return db.DB()
}
