package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// MutateFunc changes a working copy of an account. Returning an error
// discards the copy and leaves the stored account untouched.
type MutateFunc func(acc *account.Account) error

// PairMutateFunc changes working copies of two accounts, passed in the order
// the caller requested them. Both copies commit together or not at all.
type PairMutateFunc func(first, second *account.Account) error

// Repository defines account storage with per-account critical sections.
//
// Every account returned by a Repository is a snapshot copy; callers never
// hold a reference to the stored record.
type Repository interface {
	// Create inserts a new account. The id must be unused.
	Create(ctx context.Context, acc *account.Account) error

	// Get returns a snapshot of the account or account.ErrAccountNotFound.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// List returns snapshots of every account ordered by id.
	List(ctx context.Context) ([]*account.Account, error)

	// View runs fn while holding the account lock. fn receives a snapshot.
	View(ctx context.Context, id int64, fn MutateFunc) error

	// Update runs fn on a copy of the account while holding its lock and
	// commits the copy when fn returns nil. It returns the committed snapshot.
	Update(ctx context.Context, id int64, fn MutateFunc) (*account.Account, error)

	// UpdatePair holds both account locks, acquired in ascending id order,
	// while fn runs. Lookup happens in argument order, so a missing first
	// account is reported before a missing second one.
	UpdatePair(
		ctx context.Context,
		firstID, secondID int64,
		fn PairMutateFunc,
	) (*account.Account, *account.Account, error)
}
