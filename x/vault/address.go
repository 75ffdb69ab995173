package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Derive returns an address computed from the tag and the seed. It is a one
// way function of both values.
func Derive(tag string, seed []byte) weave.Address {
	return weave.NewCondition("vault", tag, seed).Address()
}

// AuthCondition returns the condition of the vault stored under given state
// address. Only this extension can produce it, so the vault account derived
// from it cannot be controlled by any signature.
func AuthCondition(state weave.Address) weave.Condition {
	return weave.NewCondition("vault", "auth", state)
}

// Addresses is the set of addresses controlled by a single vault.
type Addresses struct {
	State weave.Address
	Auth  weave.Address
	Vault weave.Address
}

// DeriveAddresses returns all addresses of the vault owned by given address.
func DeriveAddresses(owner weave.Address) Addresses {
	state := Derive("state", owner)
	auth := AuthCondition(state).Address()
	return Addresses{
		State: state,
		Auth:  auth,
		Vault: Derive("vault", auth),
	}
}

// Match returns ErrAddressMismatch unless given addresses are equal to the
// derived ones.
func (a Addresses) Match(state, auth, vault weave.Address) error {
	if !a.State.Equals(state) {
		return errors.Wrapf(ErrAddressMismatch, "state address %s, want %s", state, a.State)
	}
	if !a.Auth.Equals(auth) {
		return errors.Wrapf(ErrAddressMismatch, "auth address %s, want %s", auth, a.Auth)
	}
	if !a.Vault.Equals(vault) {
		return errors.Wrapf(ErrAddressMismatch, "vault address %s, want %s", vault, a.Vault)
	}
	return nil
}
