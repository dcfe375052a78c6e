package profile

import (
	"embed"

	"github.com/klwxsrx/profile-client/pkg/sql"
)

var Migrations = sql.FSMigrations("profile", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
