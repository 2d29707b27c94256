package ports

import "context"

// TxManager scopes document and journal writes made through the ctx passed to
// fn. Nested calls join the outer scope.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
