package vault

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestDeriveIsDeterministic(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	a := DeriveAddresses(owner)
	b := DeriveAddresses(owner)
	assert.Equal(t, a, b)

	assert.Equal(t, Derive("state", owner), a.State)
	assert.Equal(t, Derive("auth", a.State), a.Auth)
	assert.Equal(t, Derive("vault", a.Auth), a.Vault)
	assert.Equal(t, AuthCondition(a.State).Address(), a.Auth)

	if err := a.State.Validate(); err != nil {
		t.Fatalf("invalid state address: %s", err)
	}
	if len(a.Vault) != weave.AddressLength {
		t.Fatalf("unexpected address length: %d", len(a.Vault))
	}
}

func TestDeriveSeparation(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	all := []weave.Address{
		Derive("state", alice),
		Derive("auth", alice),
		Derive("vault", alice),
		Derive("state", bob),
		DeriveAddresses(alice).Auth,
		DeriveAddresses(alice).Vault,
		DeriveAddresses(bob).Auth,
		DeriveAddresses(bob).Vault,
		alice,
		bob,
	}
	seen := make(map[string]int)
	for i, a := range all {
		if j, ok := seen[a.String()]; ok {
			t.Fatalf("address %d is equal to address %d: %s", i, j, a)
		}
		seen[a.String()] = i
	}
}

func TestAddressesMatch(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	addrs := DeriveAddresses(owner)
	other := DeriveAddresses(weavetest.NewCondition().Address())

	cases := map[string]struct {
		State, Auth, Vault weave.Address
		WantErr            *errors.Error
	}{
		"all addresses match": {
			State:   addrs.State,
			Auth:    addrs.Auth,
			Vault:   addrs.Vault,
			WantErr: nil,
		},
		"state of another owner": {
			State:   other.State,
			Auth:    addrs.Auth,
			Vault:   addrs.Vault,
			WantErr: ErrAddressMismatch,
		},
		"auth of another owner": {
			State:   addrs.State,
			Auth:    other.Auth,
			Vault:   addrs.Vault,
			WantErr: ErrAddressMismatch,
		},
		"vault of another owner": {
			State:   addrs.State,
			Auth:    addrs.Auth,
			Vault:   other.Vault,
			WantErr: ErrAddressMismatch,
		},
		"owner address used as vault": {
			State:   addrs.State,
			Auth:    addrs.Auth,
			Vault:   owner,
			WantErr: ErrAddressMismatch,
		},
		"missing addresses": {
			WantErr: ErrAddressMismatch,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := addrs.Match(tc.State, tc.Auth, tc.Vault)
			if !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
		})
	}
}
