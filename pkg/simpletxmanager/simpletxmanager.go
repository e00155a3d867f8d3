// Package simpletxmanager is the uninstrumented counterpart of
// txmanager, working directly over *sql.DB. Used when metrics are
// disabled. Conflict classification is shared with txmanager so callers
// match on a single sentinel regardless of which manager is wired.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
	"github.com/nailsbynatalia/booking-service/pkg/txmanager"
)

// TransactionManager runs functions in transactions over a plain *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// Do runs fn inside a transaction at the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", txmanager.ErrBegin, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		if txmanager.IsConflictSQLState(err) {
			return fmt.Errorf("%w: %v", txmanager.ErrConflict, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if txmanager.IsConflictSQLState(err) {
			return fmt.Errorf("%w: %v", txmanager.ErrConflict, err)
		}
		return fmt.Errorf("%w: %v", txmanager.ErrCommit, err)
	}

	return nil
}
