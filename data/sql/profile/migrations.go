package profile

import (
	"embed"

	"github.com/klwxsrx/social-profile-service/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
