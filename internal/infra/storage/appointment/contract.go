package appointment

import (
	"context"
	"database/sql"

	"github.com/salonhub/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner can open transactions.
// Satisfied by *dbmetrics.DB; *sql.DB is adapted by the tx managers.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
