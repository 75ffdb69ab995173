package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	initializeCost int64 = 100
	depositCost    int64 = 0
	withdrawCost   int64 = 0
)

// RegisterQuery will register vault records as "/vaults".
func RegisterQuery(qr weave.QueryRouter) {
	NewVaultBucket().Register("vaults", qr)
}

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ledger Ledger) {
	r = migration.SchemaMigratingRegistry("vault", r)
	vaults := NewVaultBucket()

	r.Handle(&InitializeMsg{}, &initializeHandler{
		auth:   auth,
		vaults: vaults,
		ledger: ledger,
	})
	r.Handle(&DepositMsg{}, &depositHandler{
		auth:   auth,
		vaults: vaults,
		ledger: ledger,
	})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{
		auth:   auth,
		vaults: vaults,
		ledger: ledger,
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("vault", &Configuration{}, auth, migration.CurrentAdmin))
}

type initializeHandler struct {
	auth   x.Authenticator
	vaults orm.ModelBucket
	ledger Ledger
}

var _ weave.Handler = (*initializeHandler)(nil)

func (h *initializeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: initializeCost}, nil
}

func (h *initializeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addrs := DeriveAddresses(msg.Owner)
	if err := h.ledger.CreateAccount(db, addrs.Auth, msg.Owner, coin.Coin{}); err != nil {
		return nil, errors.Wrap(err, "create auth account")
	}
	if err := h.ledger.CreateAccount(db, addrs.Vault, msg.Owner, conf.Reserve); err != nil {
		return nil, errors.Wrap(err, "create vault account")
	}
	vault := Vault{
		Metadata:        &weave.Metadata{Schema: 1},
		Owner:           msg.Owner,
		InterestRateBps: msg.InterestRateBps,
	}
	key, err := h.vaults.Put(db, addrs.State, &vault)
	if err != nil {
		return nil, errors.Wrap(err, "store vault")
	}
	weave.GetLogger(ctx).Info("vault initialized",
		"owner", msg.Owner,
		"state", addrs.State,
		"vault", addrs.Vault,
		"rate_bps", msg.InterestRateBps,
		"reserve", conf.Reserve)
	return &weave.DeliverResult{Data: key}, nil
}

func (h *initializeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeMsg, *Configuration, error) {
	var msg InitializeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	addrs := DeriveAddresses(msg.Owner)
	if err := addrs.Match(msg.State, msg.Auth, msg.Vault); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		weave.GetLogger(ctx).Error("unauthorized vault initialization", "owner", msg.Owner)
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if conf.MaxInterestRateBps > 0 && msg.InterestRateBps > conf.MaxInterestRateBps {
		return nil, nil, errors.Wrapf(errors.ErrInput,
			"interest rate %d bps exceeds the limit of %d bps", msg.InterestRateBps, conf.MaxInterestRateBps)
	}
	switch err := h.vaults.Has(db, addrs.State); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "vault already initialized")
	case !errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(err, "vault")
	}
	if !conf.Reserve.IsZero() {
		have, err := h.ledger.Balance(db, msg.Owner, conf.Reserve.Ticker)
		if err != nil {
			return nil, nil, errors.Wrap(err, "owner balance")
		}
		if !have.IsGTE(conf.Reserve) {
			return nil, nil, errors.Wrapf(errors.ErrAmount, "reserve of %s required", conf.Reserve)
		}
	}
	return &msg, &conf, nil
}

type depositHandler struct {
	auth   x.Authenticator
	vaults orm.ModelBucket
	ledger Ledger
}

var _ weave.Handler = (*depositHandler)(nil)

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: depositCost}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addrs := DeriveAddresses(msg.Owner)
	if err := h.ledger.Transfer(db, msg.Owner, addrs.Vault, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "deposit funds")
	}
	if _, err := h.vaults.Put(db, addrs.State, vault); err != nil {
		return nil, errors.Wrap(err, "store vault")
	}
	weave.GetLogger(ctx).Info("vault deposit",
		"owner", msg.Owner,
		"amount", msg.Amount,
		"principal", vault.Principal,
		"deposit_time", vault.DepositTime)
	return &weave.DeliverResult{Data: addrs.State}, nil
}

// validate returns the message together with the vault state as it must be
// after the deposit is applied.
func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DepositMsg, *Vault, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := loadOwnedVault(ctx, db, h.auth, h.vaults, msg.Owner, msg.State, msg.Auth, msg.Vault)
	if err != nil {
		return nil, nil, err
	}
	now, err := blockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := vault.deposit(msg.Amount, now); err != nil {
		return nil, nil, err
	}
	have, err := h.ledger.Balance(db, msg.Owner, msg.Amount.Ticker)
	if err != nil {
		return nil, nil, errors.Wrap(err, "owner balance")
	}
	if !have.IsGTE(msg.Amount) {
		return nil, nil, errors.Wrapf(errors.ErrAmount, "owner holds %s", have)
	}
	return &msg, vault, nil
}

type withdrawHandler struct {
	auth   x.Authenticator
	vaults orm.ModelBucket
	ledger Ledger
}

var _ weave.Handler = (*withdrawHandler)(nil)

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	w, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addrs := DeriveAddresses(w.msg.Owner)
	if err := h.ledger.Transfer(db, addrs.Vault, w.msg.Owner, w.receipt.Paid); err != nil {
		return nil, errors.Wrap(err, "pay out")
	}
	if _, err := h.vaults.Put(db, addrs.State, w.vault); err != nil {
		return nil, errors.Wrap(err, "store vault")
	}
	raw, err := w.receipt.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal receipt")
	}
	weave.GetLogger(ctx).Info("vault withdraw",
		"owner", w.msg.Owner,
		"principal", w.principal,
		"amount", w.msg.Amount,
		"rate_bps", w.vault.InterestRateBps,
		"deposit_time", int64(w.depositTime),
		"now", int64(w.now),
		"elapsed", w.receipt.Elapsed,
		"interest", w.receipt.Interest,
		"paid", w.receipt.Paid)
	return &weave.DeliverResult{Data: raw}, nil
}

// withdrawal is a validated withdraw request.
type withdrawal struct {
	msg *WithdrawMsg
	// vault is the state after the withdrawal is applied.
	vault   *Vault
	receipt *WithdrawReceipt

	principal   coin.Coin
	depositTime weave.UnixTime
	now         weave.UnixTime
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*withdrawal, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	vault, err := loadOwnedVault(ctx, db, h.auth, h.vaults, msg.Owner, msg.State, msg.Auth, msg.Vault)
	if err != nil {
		return nil, err
	}
	if vault.Principal.IsZero() {
		return nil, errors.Wrap(ErrZeroPrincipal, "nothing to withdraw")
	}
	if !vault.Principal.SameType(msg.Amount) {
		return nil, errors.Wrapf(errors.ErrCurrency, "vault holds %s", vault.Principal.Ticker)
	}
	// Block time is read once so that the interest depends only on the
	// logged inputs.
	now, err := blockTime(ctx)
	if err != nil {
		return nil, err
	}
	elapsed := int64(now - vault.DepositTime)
	if elapsed < 0 {
		elapsed = 0
	}
	interest, paid, err := Payout(msg.Amount, vault.InterestRateBps, elapsed)
	if err != nil {
		return nil, err
	}

	// Funds backing the principal that stays in the vault cannot be used
	// for the payout.
	need := paid
	if msg.Amount.Compare(vault.Principal) < 0 {
		rest, err := vault.Principal.Subtract(msg.Amount)
		if err != nil {
			return nil, errors.Wrap(err, "remaining principal")
		}
		if need, err = paid.Add(rest); err != nil {
			return nil, errors.Wrap(err, "required vault funds")
		}
	}

	addrs := DeriveAddresses(msg.Owner)
	available, err := h.ledger.Balance(db, addrs.Vault, paid.Ticker)
	if err != nil {
		return nil, errors.Wrap(err, "vault balance")
	}
	if !available.IsGTE(need) {
		return nil, errors.Wrapf(ErrInsufficientVaultFunds, "vault holds %s, need %s", available, need)
	}

	w := withdrawal{
		msg: &msg,
		receipt: &WithdrawReceipt{
			Principal: msg.Amount,
			Interest:  interest,
			Paid:      paid,
			Elapsed:   elapsed,
		},
		principal:   vault.Principal,
		depositTime: vault.DepositTime,
		now:         now,
	}
	if err := vault.withdraw(msg.Amount); err != nil {
		return nil, err
	}
	w.vault = vault
	return &w, nil
}

// loadOwnedVault returns the vault of given owner after ensuring that the
// addresses match the owner and that the owner has signed the transaction.
func loadOwnedVault(
	ctx weave.Context,
	db weave.KVStore,
	auth x.Authenticator,
	vaults orm.ModelBucket,
	owner, state, authAddr, vaultAddr weave.Address,
) (*Vault, error) {
	addrs := DeriveAddresses(owner)
	if err := addrs.Match(state, authAddr, vaultAddr); err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, owner) {
		weave.GetLogger(ctx).Error("unauthorized vault access",
			"owner", owner,
			"signers", x.GetAddresses(ctx, auth))
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	var vault Vault
	if err := vaults.One(db, addrs.State, &vault); err != nil {
		return nil, errors.Wrap(err, "vault not initialized")
	}
	if !vault.Owner.Equals(owner) {
		weave.GetLogger(ctx).Error("vault owner mismatch",
			"owner", vault.Owner,
			"caller", owner)
		return nil, errors.Wrap(errors.ErrUnauthorized, "not the vault owner")
	}
	return &vault, nil
}

// blockTime returns the current block time. Vault accounting relies on zero
// being a marker of no deposit, so only times after the epoch are accepted.
func blockTime(ctx weave.Context) (weave.UnixTime, error) {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	t := weave.AsUnixTime(now)
	if t <= 0 {
		return 0, errors.Wrap(errors.ErrState, "block time must be after the epoch")
	}
	return t, nil
}
