package vault

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		c    Configuration
		errs map[string]*errors.Error
	}{
		"all good": {
			c: Configuration{
				Metadata:           &weave.Metadata{Schema: 1},
				Owner:              weavetest.NewCondition().Address(),
				Reserve:            coin.NewCoin(10, 0, "IOV"),
				MaxInterestRateBps: 2500,
			},
			errs: map[string]*errors.Error{
				"Metadata":           nil,
				"Owner":              nil,
				"Reserve":            nil,
				"MaxInterestRateBps": nil,
			},
		},
		"reserve and rate limit are optional": {
			c: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    weavetest.NewCondition().Address(),
			},
			errs: map[string]*errors.Error{
				"Reserve":            nil,
				"MaxInterestRateBps": nil,
			},
		},
		"certain fields are required": {
			c: Configuration{},
			errs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
				"Owner":    errors.ErrEmpty,
			},
		},
		"negative values": {
			c: Configuration{
				Metadata:           &weave.Metadata{Schema: 1},
				Owner:              weavetest.NewCondition().Address(),
				Reserve:            coin.NewCoin(-1, 0, "IOV"),
				MaxInterestRateBps: -1,
			},
			errs: map[string]*errors.Error{
				"Reserve":            errors.ErrAmount,
				"MaxInterestRateBps": errors.ErrInput,
			},
		},
		"invalid reserve currency": {
			c: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    weavetest.NewCondition().Address(),
				Reserve:  coin.NewCoin(1, 0, ""),
			},
			errs: map[string]*errors.Error{
				"Reserve": errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.c.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestConfigurationValidatePatch(t *testing.T) {
	cases := map[string]struct {
		c    Configuration
		errs map[string]*errors.Error
	}{
		"owner may be omitted": {
			c: Configuration{
				Metadata:           &weave.Metadata{Schema: 1},
				MaxInterestRateBps: 300,
			},
			errs: map[string]*errors.Error{
				"Metadata":           nil,
				"Owner":              nil,
				"MaxInterestRateBps": nil,
			},
		},
		"owner that is set must be valid": {
			c: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    weave.Address{0x01, 0x02},
			},
			errs: map[string]*errors.Error{
				"Owner": errors.ErrInput,
			},
		},
		"values are validated": {
			c: Configuration{
				Reserve:            coin.NewCoin(-1, 0, "IOV"),
				MaxInterestRateBps: -1,
			},
			errs: map[string]*errors.Error{
				"Metadata":           errors.ErrMetadata,
				"Reserve":            errors.ErrAmount,
				"MaxInterestRateBps": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.c.validatePatch()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestLoadMissingConfiguration(t *testing.T) {
	db := store.MemStore()
	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	if !conf.Reserve.IsZero() || conf.MaxInterestRateBps != 0 {
		t.Fatalf("unexpected default configuration: %v", conf)
	}
}

func TestGenesisConfiguration(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Genesis     string
		WantErr     *errors.Error
		WantReserve coin.Coin
		WantMaxRate int64
	}{
		"configuration is optional": {
			Genesis: `{}`,
		},
		"configuration of other extensions is ignored": {
			Genesis: `{"conf": {"cash": {"minimal_fee": "0.1 IOV"}}}`,
		},
		"configuration is loaded": {
			Genesis: `{
				"conf": {
					"vault": {
						"owner": "` + hex.EncodeToString(owner) + `",
						"reserve": "5 IOV",
						"max_interest_rate_bps": 1200
					}
				}
			}`,
			WantReserve: coin.NewCoin(5, 0, "IOV"),
			WantMaxRate: 1200,
		},
		"invalid configuration": {
			Genesis: `{
				"conf": {
					"vault": {
						"owner": "` + hex.EncodeToString(owner) + `",
						"max_interest_rate_bps": -1
					}
				}
			}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot decode genesis: %s", err)
			}
			db := store.MemStore()
			var ini Initializer
			if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
			if tc.WantErr != nil {
				return
			}
			conf, err := loadConf(db)
			if err != nil {
				t.Fatalf("cannot load configuration: %s", err)
			}
			if !conf.Reserve.Equals(tc.WantReserve) && !(conf.Reserve.IsZero() && tc.WantReserve.IsZero()) {
				t.Fatalf("want %v reserve, got %v", tc.WantReserve, conf.Reserve)
			}
			assert.Equal(t, tc.WantMaxRate, conf.MaxInterestRateBps)
		})
	}
}
