package port

import (
	"context"

	"github.com/nikolayk812/moneykit/internal/domain"
)

type WalletRepository interface {
	GetWallet(ctx context.Context, owner string) (domain.Wallet, error)
	AddMoney(ctx context.Context, owner string, m domain.Money) error
	FindByCurrency(ctx context.Context, owner string, c domain.Currency) (domain.Money, error)
}
