package shared

import (
	"context"

	"room-booking-api/internal/infra/db"
)

// TxManager runs a function inside a database transaction. The conflict
// check and the booking write share one transaction so no partial state is
// ever observable.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error
}
