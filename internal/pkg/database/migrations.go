package database

import (
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// The schema only targets postgres, reached through the pgx stdlib driver.
const (
	migrationDriver  = "pgx"
	migrationDialect = "postgres"
)

func MigrateDatabase(databaseUrl string, migrations fs.FS, dir string) error {
	db, err := sql.Open(migrationDriver, databaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(migrationDialect); err != nil {
		return err
	}

	return goose.Up(db, dir)
}
