package vault

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	errs := c.validate()
	return errors.AppendField(errs, "Owner", c.Owner.Validate())
}

// validatePatch validates a configuration update. A patch sets only the
// fields it changes, so an absent owner keeps the stored one.
func (c *Configuration) validatePatch() error {
	errs := c.validate()
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	return errs
}

func (c *Configuration) validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if !c.Reserve.IsZero() {
		if err := c.Reserve.Validate(); err != nil {
			errs = errors.AppendField(errs, "Reserve", err)
		} else if !c.Reserve.IsPositive() {
			errs = errors.AppendField(errs, "Reserve", errors.Wrap(errors.ErrAmount, "must not be negative"))
		}
	}
	if c.MaxInterestRateBps < 0 {
		errs = errors.AppendField(errs, "MaxInterestRateBps", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	return errs
}

// loadConf returns the vault extension configuration. Configuration is
// optional and a zero value is returned when none was stored.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, "vault", &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return Configuration{}, nil
	default:
		return conf, errors.Wrap(err, "load configuration")
	}
}
