package infra

import (
	sqlprofile "github.com/klwxsrx/social-profile-service/data/sql/profile"
	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	"github.com/klwxsrx/social-profile-service/internal/profile/infra/sql"
	"github.com/klwxsrx/social-profile-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type SQLContainer struct {
	ProfileRepo lazy.Loader[domain.ProfileRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustApply("profile", sqlprofile.Migrations)

		return SQLContainer{
			ProfileRepo: profileRepoProvider(db, clock),
		}, nil
	})
}

func profileRepoProvider(
	db lazy.Loader[pkgsql.Database],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[domain.ProfileRepository] {
	return lazy.New(func() (domain.ProfileRepository, error) {
		return sql.NewProfileRepository(db.MustLoad(), clock.MustLoad()), nil
	})
}
