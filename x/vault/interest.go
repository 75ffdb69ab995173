package vault

import (
	"math/big"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// SecondsPerYear is the length of a year used for interest accrual.
const SecondsPerYear int64 = 365 * 24 * 60 * 60

// bpsDenominator is the number of basis points in one.
const bpsDenominator int64 = 10000

// Interest returns the simple interest accrued by amount over elapsed seconds
// at given yearly rate expressed in basis points. The result is rounded down
// to the smallest fractional unit. No interest is accrued for a non positive
// elapsed time.
//
// Computation is done on the whole amount expressed in fractional units
//
//	interest = amount * rate * elapsed / (10000 * SecondsPerYear)
//
// and fails with ErrOverflow if the result cannot be represented as a coin.
func Interest(amount coin.Coin, rateBps int64, elapsed int64) (coin.Coin, error) {
	if rateBps < 0 {
		return coin.Coin{}, errors.Wrap(errors.ErrInput, "negative interest rate")
	}
	if !amount.IsNonNegative() {
		return coin.Coin{}, errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if elapsed <= 0 || rateBps == 0 || amount.IsZero() {
		return coin.Coin{Ticker: amount.Ticker}, nil
	}

	n := units(amount)
	n.Mul(n, big.NewInt(rateBps))
	n.Mul(n, big.NewInt(elapsed))
	n.Quo(n, big.NewInt(bpsDenominator*SecondsPerYear))
	return fromUnits(n, amount.Ticker)
}

// Payout returns the interest accrued by amount and the total amount that must
// be paid out, which is the amount increased by the interest.
func Payout(amount coin.Coin, rateBps int64, elapsed int64) (interest, total coin.Coin, err error) {
	interest, err = Interest(amount, rateBps, elapsed)
	if err != nil {
		return interest, total, err
	}
	total, err = amount.Add(interest)
	if err != nil {
		return interest, total, errors.Wrap(err, "payout")
	}
	return interest, total, nil
}

// units returns the value of a non negative coin expressed in fractional units.
func units(c coin.Coin) *big.Int {
	n := big.NewInt(c.Whole)
	n.Mul(n, big.NewInt(coin.FracUnit))
	return n.Add(n, big.NewInt(c.Fractional))
}

func fromUnits(n *big.Int, ticker string) (coin.Coin, error) {
	whole, frac := new(big.Int).QuoRem(n, big.NewInt(coin.FracUnit), new(big.Int))
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt {
		return coin.Coin{}, errors.Wrapf(errors.ErrOverflow, "%s units", n)
	}
	return coin.NewCoin(whole.Int64(), frac.Int64(), ticker), nil
}
