package repository

import "context"

// Repos re-bound to a single transaction. The only place this matters is
// order creation: the header and its items must land together or not at all.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// Hides begin/commit/rollback from the usecase layer.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
