package vault

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

func TestInterest(t *testing.T) {
	cases := map[string]struct {
		Amount       coin.Coin
		RateBps      int64
		Elapsed      int64
		WantInterest coin.Coin
		WantErr      *errors.Error
	}{
		"five percent over a year": {
			Amount:       coin.NewCoin(1, 0, "IOV"),
			RateBps:      500,
			Elapsed:      SecondsPerYear,
			WantInterest: coin.NewCoin(0, 50000000, "IOV"),
		},
		"five percent over half a year": {
			Amount:       coin.NewCoin(1, 0, "IOV"),
			RateBps:      500,
			Elapsed:      SecondsPerYear / 2,
			WantInterest: coin.NewCoin(0, 25000000, "IOV"),
		},
		"whole and fractional amount over two years": {
			Amount:       coin.NewCoin(10, 500000000, "IOV"),
			RateBps:      1000,
			Elapsed:      2 * SecondsPerYear,
			WantInterest: coin.NewCoin(2, 100000000, "IOV"),
		},
		"interest crosses the whole unit": {
			Amount:       coin.NewCoin(100, 0, "IOV"),
			RateBps:      10000,
			Elapsed:      SecondsPerYear,
			WantInterest: coin.NewCoin(100, 0, "IOV"),
		},
		"result is rounded down": {
			Amount:       coin.NewCoin(0, 1000, "IOV"),
			RateBps:      1,
			Elapsed:      SecondsPerYear,
			WantInterest: coin.NewCoin(0, 0, "IOV"),
		},
		"truncation keeps the integer part": {
			Amount:  coin.NewCoin(0, 1000000000-1, "IOV"),
			RateBps: 3,
			Elapsed: 1,
			// 999999999 * 3 / 315360000000 = 0.0095...
			WantInterest: coin.NewCoin(0, 0, "IOV"),
		},
		"one second of a large deposit": {
			Amount:  coin.NewCoin(31536, 0, "IOV"),
			RateBps: 10000,
			Elapsed: 1,
			// 31536e9 units * 1 / 31536000 seconds
			WantInterest: coin.NewCoin(0, 1000000, "IOV"),
		},
		"zero elapsed time": {
			Amount:       coin.NewCoin(5, 0, "IOV"),
			RateBps:      500,
			Elapsed:      0,
			WantInterest: coin.NewCoin(0, 0, "IOV"),
		},
		"negative elapsed time": {
			Amount:       coin.NewCoin(5, 0, "IOV"),
			RateBps:      500,
			Elapsed:      -100,
			WantInterest: coin.NewCoin(0, 0, "IOV"),
		},
		"zero rate": {
			Amount:       coin.NewCoin(5, 0, "IOV"),
			RateBps:      0,
			Elapsed:      SecondsPerYear,
			WantInterest: coin.NewCoin(0, 0, "IOV"),
		},
		"negative rate": {
			Amount:  coin.NewCoin(5, 0, "IOV"),
			RateBps: -1,
			Elapsed: SecondsPerYear,
			WantErr: errors.ErrInput,
		},
		"negative amount": {
			Amount:  coin.NewCoin(-5, 0, "IOV"),
			RateBps: 1,
			Elapsed: SecondsPerYear,
			WantErr: errors.ErrAmount,
		},
		"interest overflows a coin": {
			Amount:  coin.NewCoin(coin.MaxInt, 0, "IOV"),
			RateBps: 20000,
			Elapsed: SecondsPerYear,
			WantErr: errors.ErrOverflow,
		},
		"huge rate and time overflow": {
			Amount:  coin.NewCoin(1000, 0, "IOV"),
			RateBps: 1 << 62,
			Elapsed: 1 << 62,
			WantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Interest(tc.Amount, tc.RateBps, tc.Elapsed)
			if !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
			if tc.WantErr != nil {
				return
			}
			if !got.Equals(tc.WantInterest) {
				t.Fatalf("want %v interest, got %v", tc.WantInterest, got)
			}
		})
	}
}

func TestPayout(t *testing.T) {
	interest, total, err := Payout(coin.NewCoin(1, 0, "IOV"), 500, SecondsPerYear)
	if err != nil {
		t.Fatalf("payout: %s", err)
	}
	if want := coin.NewCoin(0, 50000000, "IOV"); !interest.Equals(want) {
		t.Fatalf("want %v interest, got %v", want, interest)
	}
	if want := coin.NewCoin(1, 50000000, "IOV"); !total.Equals(want) {
		t.Fatalf("want %v paid, got %v", want, total)
	}

	// Interest alone fits a coin but the sum with the amount does not.
	if _, _, err := Payout(coin.NewCoin(coin.MaxInt, 0, "IOV"), 10000, SecondsPerYear/2); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow error, got %+v", err)
	}
}
