//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Service=Service"
package user

import (
	"context"
	"errors"
	"time"

	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
)

var ErrUserNotFound = errors.New("user not found")

type (
	Service interface {
		Get(context.Context, domain.UserID) (*Data, error)
	}

	Data struct {
		ID        domain.UserID
		DeletedAt *time.Time
	}
)

func (d *Data) IsDeleted() bool {
	return d.DeletedAt != nil
}
