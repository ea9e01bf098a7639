//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"math/big"
)

// FromBig creates a new Int from the big.Int x.
func FromBig(x *big.Int) Int {
	return newInt(new(big.Int).Abs(x).String(), x.Sign() < 0)
}

// Big returns z as a big.Int.
func (z Int) Big() *big.Int {
	result, ok := new(big.Int).SetString(z.String(), 10)
	if !ok {
		panic("bigint: invalid value " + z.String())
	}
	return result
}
