package vault

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestVaultValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Model *Vault
		Errs  map[string]*errors.Error
	}{
		"empty vault": {
			Model: &Vault{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           owner,
				InterestRateBps: 500,
			},
			Errs: map[string]*errors.Error{
				"Metadata":        nil,
				"Owner":           nil,
				"InterestRateBps": nil,
				"Principal":       nil,
				"DepositTime":     nil,
			},
		},
		"vault with a deposit": {
			Model: &Vault{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           owner,
				InterestRateBps: 0,
				Principal:       coin.NewCoin(4, 2, "IOV"),
				DepositTime:     1572247483,
			},
			Errs: map[string]*errors.Error{
				"Metadata":    nil,
				"Owner":       nil,
				"Principal":   nil,
				"DepositTime": nil,
			},
		},
		"missing fields": {
			Model: &Vault{},
			Errs: map[string]*errors.Error{
				"Metadata":    errors.ErrMetadata,
				"Owner":       errors.ErrEmpty,
				"Principal":   nil,
				"DepositTime": nil,
			},
		},
		"negative interest rate": {
			Model: &Vault{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           owner,
				InterestRateBps: -1,
			},
			Errs: map[string]*errors.Error{
				"InterestRateBps": errors.ErrInput,
			},
		},
		"negative principal": {
			Model: &Vault{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       owner,
				Principal:   coin.NewCoin(-4, 0, "IOV"),
				DepositTime: 1572247483,
			},
			Errs: map[string]*errors.Error{
				"Principal": errors.ErrAmount,
			},
		},
		"principal without a deposit time": {
			Model: &Vault{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     owner,
				Principal: coin.NewCoin(4, 0, "IOV"),
			},
			Errs: map[string]*errors.Error{
				"Principal":   nil,
				"DepositTime": errors.ErrState,
			},
		},
		"stale deposit time": {
			Model: &Vault{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       owner,
				DepositTime: 1572247483,
			},
			Errs: map[string]*errors.Error{
				"DepositTime": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Model.Validate()
			for field, wantErr := range tc.Errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestVaultDepositAndWithdraw(t *testing.T) {
	v := Vault{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    weavetest.NewCondition().Address(),
	}

	assert.Nil(t, v.deposit(coin.NewCoin(3, 0, "IOV"), 100))
	assert.Equal(t, coin.NewCoin(3, 0, "IOV"), v.Principal)
	assert.Equal(t, weave.UnixTime(100), v.DepositTime)

	// Every deposit restarts the clock.
	assert.Nil(t, v.deposit(coin.NewCoin(0, 5, "IOV"), 200))
	assert.Equal(t, coin.NewCoin(3, 5, "IOV"), v.Principal)
	assert.Equal(t, weave.UnixTime(200), v.DepositTime)

	if err := v.deposit(coin.NewCoin(1, 0, "ETH"), 300); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %+v", err)
	}
	if err := v.withdraw(coin.NewCoin(1, 0, "ETH")); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %+v", err)
	}

	// Partial withdrawal keeps the clock.
	assert.Nil(t, v.withdraw(coin.NewCoin(1, 0, "IOV")))
	assert.Equal(t, coin.NewCoin(2, 5, "IOV"), v.Principal)
	assert.Equal(t, weave.UnixTime(200), v.DepositTime)
	assert.Nil(t, v.Validate())

	// Withdrawing more than the principal empties the vault.
	assert.Nil(t, v.withdraw(coin.NewCoin(7, 0, "IOV")))
	assert.Equal(t, true, v.Principal.IsZero())
	assert.Equal(t, weave.UnixTime(0), v.DepositTime)
	assert.Nil(t, v.Validate())

	// An empty vault accepts any currency.
	assert.Nil(t, v.deposit(coin.NewCoin(1, 0, "ETH"), 400))
	assert.Equal(t, coin.NewCoin(1, 0, "ETH"), v.Principal)
}

func TestVaultDepositOverflow(t *testing.T) {
	v := Vault{
		Metadata:    &weave.Metadata{Schema: 1},
		Owner:       weavetest.NewCondition().Address(),
		Principal:   coin.NewCoin(coin.MaxInt, 0, "IOV"),
		DepositTime: 100,
	}
	if err := v.deposit(coin.NewCoin(1, 0, "IOV"), 200); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow error, got %+v", err)
	}
}

func TestVaultBucketOwnerIndex(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "vault")
	b := NewVaultBucket()

	owner := weavetest.NewCondition().Address()
	addrs := DeriveAddresses(owner)
	v := Vault{
		Metadata:        &weave.Metadata{Schema: 1},
		Owner:           owner,
		InterestRateBps: 250,
	}
	if _, err := b.Put(db, addrs.State, &v); err != nil {
		t.Fatalf("cannot store vault: %s", err)
	}

	var got Vault
	if err := b.One(db, addrs.State, &got); err != nil {
		t.Fatalf("cannot load vault: %s", err)
	}
	assert.Equal(t, v.InterestRateBps, got.InterestRateBps)

	var byOwner []Vault
	keys, err := b.ByIndex(db, "owner", owner, &byOwner)
	if err != nil {
		t.Fatalf("cannot query by owner: %s", err)
	}
	if len(keys) != 1 || len(byOwner) != 1 {
		t.Fatalf("want one vault, got %d", len(byOwner))
	}
	assert.Equal(t, []byte(addrs.State), keys[0])

	// Vault records are validated before being stored.
	invalid := Vault{Metadata: &weave.Metadata{Schema: 1}}
	if _, err := b.Put(db, DeriveAddresses(weavetest.NewCondition().Address()).State, &invalid); err == nil {
		t.Fatal("invalid vault stored")
	}
}
