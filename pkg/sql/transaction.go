package sql

import (
	"context"
	"fmt"

	"github.com/klwxsrx/social-profile-service/pkg/persistence"
)

const dbTransactionContextKey contextKey = iota

type (
	contextKey int

	txData struct {
		ClientTx
		owner Database
	}

	transaction struct {
		db       Database
		onCommit []func()
	}
)

// NewTransaction nests calls within the same database into the outer transaction.
func NewTransaction(db Database, onCommit ...func()) persistence.Transaction {
	return &transaction{db: db, onCommit: onCommit}
}

func (t *transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.owner == t.db
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx = txData{ClientTx: tx, owner: t.db}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	if t.db.Dialect() == DriverPostgres {
		for _, lockName := range lockNames {
			err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
			if err != nil {
				return err
			}
		}
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	for _, onCommit := range t.onCommit {
		onCommit()
	}

	return nil
}
