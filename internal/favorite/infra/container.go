package infra

import (
	sqlfavorite "github.com/klwxsrx/social-profile-service/data/sql/favorite"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	"github.com/klwxsrx/social-profile-service/internal/favorite/infra/sql"
	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type SQLContainer struct {
	FavoriteRepo lazy.Loader[domain.FavoriteRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustApply("favorite", sqlfavorite.Migrations)

		return SQLContainer{
			FavoriteRepo: lazy.New(func() (domain.FavoriteRepository, error) {
				return sql.NewFavoriteRepository(db.MustLoad(), clock.MustLoad()), nil
			}),
		}, nil
	})
}
