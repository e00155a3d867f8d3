package rule

import (
	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so the repository works
// over *sql.DB, *sql.Tx and the instrumented wrappers alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
