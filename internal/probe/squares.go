package probe

import (
	"context"
	"fmt"
	"iter"
	"math/big"
	"math/bits"
)

// MaxSquaresBase bounds n so that every square fits in a uint64.
const MaxSquaresBase = 1 << 32

const cancelCheckMask = 1<<20 - 1

// Squares lazily yields i*i for i in [0, n).
func Squares(n uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < n; i++ {
			if !yield(i * i) {
				return
			}
		}
	}
}

// SumSquares returns the exact sum of Squares(n). The running total is kept
// in 128 bits; ctx is polled every million or so terms.
func SumSquares(ctx context.Context, n uint64) (*big.Int, error) {
	if n > MaxSquaresBase {
		return nil, fmt.Errorf("n=%d exceeds %d", n, uint64(MaxSquaresBase))
	}

	var hi, lo, carry uint64
	var i uint64
	for sq := range Squares(n) {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lo, carry = bits.Add64(lo, sq, 0)
		hi += carry
		i++
	}

	sum := new(big.Int).SetUint64(hi)
	sum.Lsh(sum, 64)
	return sum.Or(sum, new(big.Int).SetUint64(lo)), nil
}

// SumSquaresWorkload adapts SumSquares to a Workload printing the decimal sum.
func SumSquaresWorkload(n uint64) Workload {
	return func(ctx context.Context) (string, error) {
		sum, err := SumSquares(ctx, n)
		if err != nil {
			return "", err
		}
		return sum.String(), nil
	}
}
