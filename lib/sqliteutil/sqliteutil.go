package sqliteutil

import (
	"database/sql"
	"os"
	"path/filepath"
)

// OpenDB opens (creating if needed) a sqlite database at the given path
// and applies the schema. The schema must be idempotent, every table is
// expected to use CREATE TABLE IF NOT EXISTS. Callers are responsible
// for importing a sqlite driver.
func OpenDB(schema, path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
