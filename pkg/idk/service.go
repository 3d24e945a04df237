//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Service=Service,Storage=Storage"
package idk

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

const DefaultKeyTTL = 24 * time.Hour

var ErrAlreadyInserted = errors.New("idk already inserted")

type (
	// Service remembers processed keys, Insert fails with ErrAlreadyInserted for a repeated key.
	Service interface {
		Insert(ctx context.Context, key uuid.UUID, extraKeys ...string) error
	}

	Cleaner interface {
		DeleteOutdated(context.Context) error
	}

	Storage interface {
		Insert(ctx context.Context, key uuid.UUID, extraKey string) error
		Delete(ctx context.Context, createdAtBefore time.Time) error
	}

	ServiceImpl struct {
		storage Storage
		clock   pkgtime.Clock
		ttl     time.Duration
	}
)

func NewService(storage Storage, clock pkgtime.Clock, ttl time.Duration) ServiceImpl {
	if ttl <= 0 {
		ttl = DefaultKeyTTL
	}

	return ServiceImpl{
		storage: storage,
		clock:   clock,
		ttl:     ttl,
	}
}

func (s ServiceImpl) Insert(ctx context.Context, key uuid.UUID, extraKeys ...string) error {
	return s.storage.Insert(ctx, key, strings.Join(extraKeys, "_"))
}

func (s ServiceImpl) DeleteOutdated(ctx context.Context) error {
	return s.storage.Delete(ctx, s.clock.Now(ctx).Add(-s.ttl))
}
