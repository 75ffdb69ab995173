package vault

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestMsgValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	addrs := DeriveAddresses(owner)

	cases := map[string]struct {
		Msg  weave.Msg
		Errs map[string]*errors.Error
	}{
		"valid initialize message": {
			Msg: &InitializeMsg{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           owner,
				InterestRateBps: 500,
				State:           addrs.State,
				Auth:            addrs.Auth,
				Vault:           addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Metadata":        nil,
				"Owner":           nil,
				"InterestRateBps": nil,
				"State":           nil,
				"Auth":            nil,
				"Vault":           nil,
			},
		},
		"initialize message with a zero rate": {
			Msg: &InitializeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"InterestRateBps": nil,
			},
		},
		"initialize message with a negative rate": {
			Msg: &InitializeMsg{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           owner,
				InterestRateBps: -5,
				State:           addrs.State,
				Auth:            addrs.Auth,
				Vault:           addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"InterestRateBps": errors.ErrInput,
			},
		},
		"empty initialize message": {
			Msg: &InitializeMsg{},
			Errs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
				"Owner":    errors.ErrEmpty,
				"State":    errors.ErrEmpty,
				"Auth":     errors.ErrEmpty,
				"Vault":    errors.ErrEmpty,
			},
		},
		"valid deposit message": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   coin.NewCoin(1, 0, "IOV"),
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
				"Amount":   nil,
				"State":    nil,
				"Auth":     nil,
				"Vault":    nil,
			},
		},
		"deposit of nothing": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   coin.NewCoin(0, 0, "IOV"),
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"deposit of a negative amount": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   coin.NewCoin(-3, 0, "IOV"),
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"deposit with an invalid ticker": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   coin.NewCoin(3, 0, "x"),
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
		"valid withdraw message": {
			Msg: &WithdrawMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   coin.NewCoin(0, 1, "IOV"),
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
				"Amount":   nil,
				"State":    nil,
				"Auth":     nil,
				"Vault":    nil,
			},
		},
		"withdraw with missing addresses": {
			Msg: &WithdrawMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   coin.NewCoin(1, 0, "IOV"),
			},
			Errs: map[string]*errors.Error{
				"Amount": nil,
				"State":  errors.ErrEmpty,
				"Auth":   errors.ErrEmpty,
				"Vault":  errors.ErrEmpty,
			},
		},
		"withdraw of nothing": {
			Msg: &WithdrawMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				State:    addrs.State,
				Auth:     addrs.Auth,
				Vault:    addrs.Vault,
			},
			Errs: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
		"valid configuration update": {
			Msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    owner,
				},
			},
			Errs: map[string]*errors.Error{
				"Metadata": nil,
				"Patch":    nil,
			},
		},
		"configuration patch without an owner": {
			Msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata:           &weave.Metadata{Schema: 1},
					MaxInterestRateBps: 300,
				},
			},
			Errs: map[string]*errors.Error{
				"Metadata": nil,
				"Patch":    nil,
			},
		},
		"configuration update without a patch": {
			Msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Errs: map[string]*errors.Error{
				"Patch": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Msg.Validate()
			for field, wantErr := range tc.Errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestMsgPath(t *testing.T) {
	assert.Equal(t, "vault/initialize", (&InitializeMsg{}).Path())
	assert.Equal(t, "vault/deposit", (&DepositMsg{}).Path())
	assert.Equal(t, "vault/withdraw", (&WithdrawMsg{}).Path())
	assert.Equal(t, "vault/update_configuration", (&UpdateConfigurationMsg{}).Path())
}
