package account

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
)

// entry guards a single stored account. Entries are never removed, so a
// pointer obtained from the index stays valid for the process lifetime.
type entry struct {
	mu  sync.Mutex
	acc *account.Account
}

type repository struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

// New creates an in-memory account repository.
func New() repo.Repository {
	return &repository{entries: make(map[int64]*entry)}
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", account.ErrAccountNotFound, id)
}

func (r *repository) lookup(id int64) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, notFound(id)
	}
	return e, nil
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, acc *account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if acc == nil {
		return account.ErrNilAccount
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[acc.ID]; exists {
		return fmt.Errorf("%w: account id %d", domain.ErrAlreadyExists, acc.ID)
	}
	r.entries[acc.ID] = &entry{acc: acc.Clone()}
	return nil
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id int64) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc.Clone(), nil
}

// List implements account.Repository.
func (r *repository) List(ctx context.Context) ([]*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	ids := make([]int64, 0, len(r.entries))
	entries := make(map[int64]*entry, len(r.entries))
	for id, e := range r.entries {
		ids = append(ids, id)
		entries[id] = e
	}
	r.mu.RUnlock()

	// Every entry is held at once so a pair update is either fully visible or
	// not at all. Ascending order matches UpdatePair.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		entries[id].mu.Lock()
	}
	result := make([]*account.Account, 0, len(ids))
	for _, id := range ids {
		result = append(result, entries[id].acc.Clone())
	}
	for _, id := range ids {
		entries[id].mu.Unlock()
	}
	return result, nil
}

// View implements account.Repository.
func (r *repository) View(ctx context.Context, id int64, fn repo.MutateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.acc.Clone())
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, id int64, fn repo.MutateFunc) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.acc.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	e.acc = working
	return working.Clone(), nil
}

// UpdatePair implements account.Repository.
func (r *repository) UpdatePair(
	ctx context.Context,
	firstID, secondID int64,
	fn repo.PairMutateFunc,
) (*account.Account, *account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if firstID == secondID {
		return nil, nil, fmt.Errorf("pair update needs two distinct accounts, got %d twice", firstID)
	}
	first, err := r.lookup(firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := r.lookup(secondID)
	if err != nil {
		return nil, nil, err
	}

	lo, hi := first, second
	if secondID < firstID {
		lo, hi = second, first
	}
	lo.mu.Lock()
	defer lo.mu.Unlock()
	hi.mu.Lock()
	defer hi.mu.Unlock()

	a, b := first.acc.Clone(), second.acc.Clone()
	if err := fn(a, b); err != nil {
		return nil, nil, err
	}
	first.acc, second.acc = a, b
	return a.Clone(), b.Clone(), nil
}
