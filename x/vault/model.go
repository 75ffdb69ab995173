package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Vault{}, migration.NoModification)
}

var _ orm.Model = (*Vault)(nil)

func (m *Vault) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if m.InterestRateBps < 0 {
		errs = errors.AppendField(errs, "InterestRateBps", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	if !m.Principal.IsZero() {
		if err := m.Principal.Validate(); err != nil {
			errs = errors.AppendField(errs, "Principal", err)
		} else if !m.Principal.IsPositive() {
			errs = errors.AppendField(errs, "Principal", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	errs = errors.AppendField(errs, "DepositTime", m.DepositTime.Validate())
	// A deposit always carries the time it was made and an empty vault
	// never carries a stale time.
	if m.Principal.IsZero() != (m.DepositTime == 0) {
		errs = errors.AppendField(errs, "DepositTime",
			errors.Wrap(errors.ErrState, "must be set if and only if principal is not zero"))
	}
	return errs
}

// deposit adds amount to the principal and restarts interest accrual for the
// whole principal at given time.
func (m *Vault) deposit(amount coin.Coin, now weave.UnixTime) error {
	total, err := m.Principal.Add(amount)
	if err != nil {
		return errors.Wrap(err, "principal")
	}
	m.Principal = total
	m.DepositTime = now
	return nil
}

// withdraw reduces the principal by amount. Withdrawing at least the whole
// principal empties the vault. A partial withdrawal keeps the deposit time.
func (m *Vault) withdraw(amount coin.Coin) error {
	if !m.Principal.SameType(amount) {
		return errors.Wrapf(errors.ErrCurrency, "vault holds %s", m.Principal.Ticker)
	}
	if amount.Compare(m.Principal) >= 0 {
		m.Principal = coin.Coin{}
		m.DepositTime = 0
		return nil
	}
	rest, err := m.Principal.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "principal")
	}
	m.Principal = rest
	return nil
}

// NewVaultBucket returns a bucket for vault records. Records are stored under
// their state address.
func NewVaultBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vault", &Vault{},
		orm.WithIndex("owner", idxOwner, true),
	)
	return migration.NewModelBucket("vault", b)
}

func idxOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Vault")
	}
	return v.Owner, nil
}
