package transaction

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// Repository defines the append-only transaction journal.
//
// Listings are ordered newest first: timestamp descending, ties broken by
// id descending. Returned transactions are copies.
type Repository interface {
	// Append records a transaction. A taken id yields domain.ErrAlreadyExists.
	Append(ctx context.Context, tx *account.Transaction) error

	// Get retrieves a transaction by its id or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*account.Transaction, error)

	// List returns every recorded transaction.
	List(ctx context.Context) ([]*account.Transaction, error)

	// ListByAccount lists transactions where the account is either side.
	ListByAccount(ctx context.Context, accountID int64) ([]*account.Transaction, error)

	// ListByAccountAndType is ListByAccount restricted to one transaction type.
	ListByAccountAndType(
		ctx context.Context,
		accountID int64,
		txType account.TransactionType,
	) ([]*account.Transaction, error)
}
