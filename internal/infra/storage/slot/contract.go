package slot

import (
	"context"
	"database/sql"

	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so the repository works
// over *sql.DB, *sql.Tx and the instrumented wrappers alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
