package repositories

import "context"

// TxFn is a function executed within a transaction. The context it
// receives carries the transaction; repositories pick it up automatically.
type TxFn func(ctx context.Context) error

// TransactionManager runs a function inside a single database transaction.
// The refinement orchestrator relies on this so that the history insert and
// the content update commit or roll back together.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
