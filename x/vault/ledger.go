package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// Ledger holds the funds of all accounts a vault operates on.
type Ledger interface {
	// CreateAccount allocates an account under given address. A positive
	// reserve is moved to the new account from the funder. Existing funds
	// of the account are preserved.
	CreateAccount(db weave.KVStore, addr, funder weave.Address, reserve coin.Coin) error
	// Transfer moves amount from src to dst. It fails with ErrAmount when
	// src does not hold enough funds.
	Transfer(db weave.KVStore, src, dst weave.Address, amount coin.Coin) error
	// Balance returns the amount of the given currency held by the account.
	Balance(db weave.KVStore, addr weave.Address, ticker string) (coin.Coin, error)
}

// CashLedger is a Ledger that keeps funds in the wallets of the cash
// extension.
type CashLedger struct {
	ctrl    cash.Controller
	wallets cash.Bucket
}

var _ Ledger = (*CashLedger)(nil)

// NewCashLedger returns a ledger that moves funds using given controller.
func NewCashLedger(ctrl cash.Controller) *CashLedger {
	return &CashLedger{
		ctrl:    ctrl,
		wallets: cash.NewBucket(),
	}
}

func (l *CashLedger) CreateAccount(db weave.KVStore, addr, funder weave.Address, reserve coin.Coin) error {
	coins, err := l.coins(db, addr)
	if err != nil {
		return errors.Wrap(err, "account balance")
	}
	if len(coins) == 0 {
		if err := l.wallets.Save(db, cash.NewWallet(addr)); err != nil {
			return errors.Wrap(err, "cannot save wallet")
		}
	}
	if reserve.IsZero() {
		return nil
	}
	if err := l.Transfer(db, funder, addr, reserve); err != nil {
		return errors.Wrap(err, "reserve")
	}
	return nil
}

func (l *CashLedger) Transfer(db weave.KVStore, src, dst weave.Address, amount coin.Coin) error {
	have, err := l.Balance(db, src, amount.Ticker)
	if err != nil {
		return err
	}
	if !have.IsGTE(amount) {
		return errors.Wrapf(errors.ErrAmount, "%s holds %s, need %s", src, have, amount)
	}
	if err := l.ctrl.MoveCoins(db, src, dst, amount); err != nil {
		return errors.Wrap(err, "move coins")
	}
	return nil
}

func (l *CashLedger) Balance(db weave.KVStore, addr weave.Address, ticker string) (coin.Coin, error) {
	coins, err := l.coins(db, addr)
	if err != nil {
		return coin.Coin{}, err
	}
	for _, c := range coins {
		if c.Ticker == ticker {
			return *c, nil
		}
	}
	return coin.NewCoin(0, 0, ticker), nil
}

// coins returns all funds held by the wallet. A missing wallet holds nothing.
func (l *CashLedger) coins(db weave.KVStore, addr weave.Address) (coin.Coins, error) {
	switch coins, err := l.ctrl.Balance(db, addr); {
	case err == nil:
		return coins, nil
	case errors.ErrNotFound.Is(err), errors.ErrEmpty.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "balance")
	}
}
