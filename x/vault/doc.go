/*
Package vault implements an interest bearing custodial vault.

A vault is owned by a single address. The owner deposits funds into a vault
account and withdraws them later together with the simple interest accrued
while the funds were deposited. Interest is paid out of the vault account, so
the account must hold a reserve on top of the deposited principal to cover
it.

Each vault is controlled by three addresses derived from the owner:

	state = Derive("state", owner)
	auth  = Derive("auth", state)
	vault = Derive("vault", auth)

The vault record is stored under the state address and the funds are held by
the vault address. Every message carries all three addresses and is rejected
unless they match the derived ones.
*/
package vault
