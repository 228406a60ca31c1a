package ports

import "context"

// TxManager scopes one atomic unit of work: every action mutation, including
// its ledger movements, commits or rolls back as a whole.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
