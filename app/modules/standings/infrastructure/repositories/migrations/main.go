// Package standingsmigrations holds the standings module's database
// migrations.
package standingsmigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()
