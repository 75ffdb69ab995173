package vault

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestCashLedger(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "cash")

	ctrl := cash.NewController(cash.NewBucket())
	ledger := NewCashLedger(ctrl)

	funder := weavetest.NewCondition().Address()
	if err := ctrl.CoinMint(db, funder, coin.NewCoin(10, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	empty := weavetest.NewCondition().Address()
	assertBalance(t, db, empty, coin.NewCoin(0, 0, "IOV"))

	if err := ledger.CreateAccount(db, empty, funder, coin.Coin{}); err != nil {
		t.Fatalf("cannot create account without a reserve: %s", err)
	}
	assertBalance(t, db, empty, coin.NewCoin(0, 0, "IOV"))
	assertBalance(t, db, funder, coin.NewCoin(10, 0, "IOV"))

	reserved := weavetest.NewCondition().Address()
	if err := ctrl.CoinMint(db, reserved, coin.NewCoin(0, 7, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := ledger.CreateAccount(db, reserved, funder, coin.NewCoin(2, 0, "IOV")); err != nil {
		t.Fatalf("cannot create account with a reserve: %s", err)
	}
	// Funds present before the account creation are preserved.
	assertBalance(t, db, reserved, coin.NewCoin(2, 7, "IOV"))
	assertBalance(t, db, funder, coin.NewCoin(8, 0, "IOV"))

	if err := ledger.CreateAccount(db, weavetest.NewCondition().Address(), funder, coin.NewCoin(9, 0, "IOV")); !errors.ErrAmount.Is(err) {
		t.Fatalf("want insufficient funds error, got %+v", err)
	}
	if err := ledger.Transfer(db, empty, funder, coin.NewCoin(1, 0, "IOV")); !errors.ErrAmount.Is(err) {
		t.Fatalf("want insufficient funds error, got %+v", err)
	}
	if err := ledger.Transfer(db, funder, empty, coin.NewCoin(1, 0, "ETH")); !errors.ErrAmount.Is(err) {
		t.Fatalf("want insufficient funds error, got %+v", err)
	}
	if err := ledger.Transfer(db, funder, empty, coin.NewCoin(8, 0, "IOV")); err != nil {
		t.Fatalf("cannot transfer: %s", err)
	}
	assertBalance(t, db, empty, coin.NewCoin(8, 0, "IOV"))
	assertBalance(t, db, funder, coin.NewCoin(0, 0, "IOV"))
}

// assertBalance fails the test unless the wallet holds exactly given amount of
// the coin currency.
func assertBalance(t testing.TB, db weave.KVStore, wallet weave.Address, want coin.Coin) {
	t.Helper()

	ledger := NewCashLedger(cash.NewController(cash.NewBucket()))
	got, err := ledger.Balance(db, wallet, want.Ticker)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if !got.Equals(want) {
		t.Fatalf("want %v on %s, got %v", want, wallet, got)
	}
}
