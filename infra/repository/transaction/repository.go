package transaction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	repo "github.com/amirasaad/ledger/pkg/repository/transaction"
)

var errNilTransaction = errors.New("nil transaction")

type repository struct {
	mu        sync.RWMutex
	byID      map[int64]*account.Transaction
	byAccount map[int64][]*account.Transaction
}

// New creates an in-memory transaction journal.
func New() repo.Repository {
	return &repository{
		byID:      make(map[int64]*account.Transaction),
		byAccount: make(map[int64][]*account.Transaction),
	}
}

// Append implements transaction.Repository.
func (r *repository) Append(ctx context.Context, tx *account.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx == nil {
		return errNilTransaction
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[tx.ID]; exists {
		return fmt.Errorf("%w: transaction id %d", domain.ErrAlreadyExists, tx.ID)
	}
	stored := tx.Clone()
	r.byID[stored.ID] = stored
	if stored.FromAccountID != nil {
		r.byAccount[*stored.FromAccountID] = append(r.byAccount[*stored.FromAccountID], stored)
	}
	if stored.ToAccountID != nil && (stored.FromAccountID == nil || *stored.ToAccountID != *stored.FromAccountID) {
		r.byAccount[*stored.ToAccountID] = append(r.byAccount[*stored.ToAccountID], stored)
	}
	return nil
}

// Get implements transaction.Repository.
func (r *repository) Get(ctx context.Context, id int64) (*account.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: transaction id %d", domain.ErrNotFound, id)
	}
	return tx.Clone(), nil
}

// List implements transaction.Repository.
func (r *repository) List(ctx context.Context) ([]*account.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*account.Transaction, 0, len(r.byID))
	for _, tx := range r.byID {
		out = append(out, tx.Clone())
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(ctx context.Context, accountID int64) ([]*account.Transaction, error) {
	return r.listByAccount(ctx, accountID, func(*account.Transaction) bool { return true })
}

// ListByAccountAndType implements transaction.Repository.
func (r *repository) ListByAccountAndType(
	ctx context.Context,
	accountID int64,
	txType account.TransactionType,
) ([]*account.Transaction, error) {
	return r.listByAccount(ctx, accountID, func(tx *account.Transaction) bool { return tx.Type == txType })
}

func (r *repository) listByAccount(
	ctx context.Context,
	accountID int64,
	keep func(*account.Transaction) bool,
) ([]*account.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	indexed := r.byAccount[accountID]
	out := make([]*account.Transaction, 0, len(indexed))
	for _, tx := range indexed {
		if keep(tx) {
			out = append(out, tx.Clone())
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(txs []*account.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Timestamp.Equal(txs[j].Timestamp) {
			return txs[i].Timestamp.After(txs[j].Timestamp)
		}
		return txs[i].ID > txs[j].ID
	})
}
