package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/moneykit/internal/domain"
	"github.com/nikolayk812/moneykit/internal/port"
)

type walletRepository struct {
	mu      sync.RWMutex
	wallets map[string]domain.Wallet
}

// NewWallet returns a memory-backed WalletRepository, safe for
// concurrent use.
func NewWallet() port.WalletRepository {
	return &walletRepository{
		wallets: make(map[string]domain.Wallet),
	}
}

func (r *walletRepository) GetWallet(_ context.Context, owner string) (domain.Wallet, error) {
	if owner == "" {
		return domain.Wallet{}, fmt.Errorf("owner is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[owner]
	if !ok {
		// an owner without a wallet gets an empty one, not an error
		return domain.Wallet{Owner: owner}, nil
	}

	// detach from the stored backing array so callers cannot write
	// through into the store
	items := make([]domain.Money, len(w.Items))
	copy(items, w.Items)
	w.Items = items

	return w, nil
}

func (r *walletRepository) AddMoney(_ context.Context, owner string, m domain.Money) error {
	if owner == "" {
		return fmt.Errorf("owner is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[owner]
	if !ok {
		w = domain.NewWallet(owner)
	}

	r.wallets[owner] = w.Add(m)

	return nil
}

func (r *walletRepository) FindByCurrency(ctx context.Context, owner string, c domain.Currency) (domain.Money, error) {
	w, err := r.GetWallet(ctx, owner)
	if err != nil {
		return domain.Money{}, fmt.Errorf("r.GetWallet: %w", err)
	}

	m, err := w.FindByCurrency(c)
	if err != nil {
		return domain.Money{}, fmt.Errorf("w.FindByCurrency: %w", err)
	}

	return m, nil
}
