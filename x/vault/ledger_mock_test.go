package vault

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

type mockLedger struct {
	mock.Mock
}

var _ Ledger = (*mockLedger)(nil)

func (m *mockLedger) CreateAccount(db weave.KVStore, addr, funder weave.Address, reserve coin.Coin) error {
	return m.Called(addr, funder, reserve).Error(0)
}

func (m *mockLedger) Transfer(db weave.KVStore, src, dst weave.Address, amount coin.Coin) error {
	return m.Called(src, dst, amount).Error(0)
}

func (m *mockLedger) Balance(db weave.KVStore, addr weave.Address, ticker string) (coin.Coin, error) {
	args := m.Called(addr, ticker)
	return args.Get(0).(coin.Coin), args.Error(1)
}

func TestHandlersUseLedger(t *testing.T) {
	Convey("Given a router with a mocked ledger", t, func() {
		db := store.MemStore()
		migration.MustInitPkg(db, "vault")

		ledger := &mockLedger{}
		rt := app.NewRouter()
		auth := &weavetest.CtxAuth{Key: "auth"}
		RegisterRoutes(rt, auth, ledger)

		aliceCond := weavetest.NewCondition()
		alice := aliceCond.Address()
		addrs := DeriveAddresses(alice)

		now := time.Unix(1560000000, 0)
		ctx := weave.WithBlockTime(context.Background(), now)
		ctx = auth.SetConditions(ctx, aliceCond)

		Convey("Initialize creates both accounts without a reserve", func() {
			ledger.On("CreateAccount", addrs.Auth, alice, coin.Coin{}).Return(nil).Once()
			ledger.On("CreateAccount", addrs.Vault, alice, coin.Coin{}).Return(nil).Once()

			_, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: initializeMsg(alice, 500)})
			So(err, ShouldBeNil)
			So(ledger.AssertExpectations(t), ShouldBeTrue)

			var v Vault
			So(NewVaultBucket().One(db, addrs.State, &v), ShouldBeNil)
			So(v.Principal.IsZero(), ShouldBeTrue)
		})

		Convey("Initialize fails when the vault account cannot be created", func() {
			ledger.On("CreateAccount", addrs.Auth, alice, coin.Coin{}).Return(nil).Once()
			ledger.On("CreateAccount", addrs.Vault, alice, coin.Coin{}).Return(errors.ErrDuplicate).Once()

			_, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: initializeMsg(alice, 500)})
			So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
		})

		Convey("Given a vault holding a principal for a year", func() {
			principal := coin.NewCoin(4, 0, "IOV")
			_, err := NewVaultBucket().Put(db, addrs.State, &Vault{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           alice,
				InterestRateBps: 1000,
				Principal:       principal,
				DepositTime:     weave.AsUnixTime(now.Add(-time.Duration(SecondsPerYear) * time.Second)),
			})
			So(err, ShouldBeNil)

			paid := coin.NewCoin(4, 400000000, "IOV")

			Convey("Check does not move any funds", func() {
				ledger.On("Balance", addrs.Vault, "IOV").Return(coin.NewCoin(10, 0, "IOV"), nil)

				_, err := rt.Check(ctx, db, &weavetest.Tx{Msg: withdrawMsg(alice, principal)})
				So(err, ShouldBeNil)
				ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
			})

			Convey("Withdraw pays principal and interest out of the vault", func() {
				ledger.On("Balance", addrs.Vault, "IOV").Return(coin.NewCoin(10, 0, "IOV"), nil)
				ledger.On("Transfer", addrs.Vault, alice, paid).Return(nil).Once()

				_, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: withdrawMsg(alice, principal)})
				So(err, ShouldBeNil)
				So(ledger.AssertExpectations(t), ShouldBeTrue)

				var v Vault
				So(NewVaultBucket().One(db, addrs.State, &v), ShouldBeNil)
				So(v.Principal.IsZero(), ShouldBeTrue)
				So(v.DepositTime, ShouldEqual, weave.UnixTime(0))
			})

			Convey("Withdraw fails when the payout transfer fails", func() {
				ledger.On("Balance", addrs.Vault, "IOV").Return(coin.NewCoin(10, 0, "IOV"), nil)
				ledger.On("Transfer", addrs.Vault, alice, paid).Return(errors.ErrAmount).Once()

				cache := db.CacheWrap()
				_, err := rt.Deliver(ctx, cache, &weavetest.Tx{Msg: withdrawMsg(alice, principal)})
				So(errors.ErrAmount.Is(err), ShouldBeTrue)
				cache.Discard()

				var v Vault
				So(NewVaultBucket().One(db, addrs.State, &v), ShouldBeNil)
				So(v.Principal, ShouldResemble, principal)
			})

			Convey("Withdraw is refused when the ledger reports a short vault", func() {
				ledger.On("Balance", addrs.Vault, "IOV").Return(coin.NewCoin(4, 0, "IOV"), nil)

				_, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: withdrawMsg(alice, principal)})
				So(ErrInsufficientVaultFunds.Is(err), ShouldBeTrue)
				ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
			})

			Convey("Deposit moves funds from the owner into the vault", func() {
				amount := coin.NewCoin(1, 0, "IOV")
				ledger.On("Balance", alice, "IOV").Return(coin.NewCoin(5, 0, "IOV"), nil)
				ledger.On("Transfer", alice, addrs.Vault, amount).Return(nil).Once()

				_, err := rt.Deliver(ctx, db, &weavetest.Tx{Msg: depositMsg(alice, amount)})
				So(err, ShouldBeNil)
				So(ledger.AssertExpectations(t), ShouldBeTrue)

				var v Vault
				So(NewVaultBucket().One(db, addrs.State, &v), ShouldBeNil)
				So(v.Principal, ShouldResemble, coin.NewCoin(5, 0, "IOV"))
				So(v.DepositTime, ShouldEqual, weave.AsUnixTime(now))
			})
		})
	})
}
