package vault

import "github.com/iov-one/weave/errors"

var (
	// ErrAddressMismatch is returned when a message carries an address that
	// was not derived from the owner.
	ErrAddressMismatch = errors.Register(1300, "address mismatch")

	// ErrInsufficientVaultFunds is returned when the vault account cannot
	// pay out the withdrawn amount together with the interest.
	ErrInsufficientVaultFunds = errors.Register(1301, "insufficient vault funds")

	// ErrZeroPrincipal is returned when withdrawing from a vault that holds
	// no deposit.
	ErrZeroPrincipal = errors.Register(1302, "zero principal")
)
