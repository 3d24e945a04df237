package stub

import (
	"context"

	"github.com/klwxsrx/social-profile-service/pkg/persistence"
)

type transaction struct{}

func NewTransaction() persistence.Transaction {
	return transaction{}
}

func (transaction) Execute(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	return fn(ctx)
}
