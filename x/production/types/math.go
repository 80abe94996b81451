package types

import sdkmath "cosmossdk.io/math"

// All ratio arithmetic in this module uses integer math (sdkmath.Int) scaled
// by WAD -- no floating point is ever used. Multiplication always happens
// before division so precision is preserved; divisions truncate toward zero,
// so repeated tiny settlements can lose dust. That is expected.

// WadScale is the fixed-point scale: 1.0 == 10^18.
var WadScale = sdkmath.NewInt(1_000_000_000_000_000_000)

// MulWad returns a * b / WAD, truncating toward zero.
func MulWad(a, b sdkmath.Int) sdkmath.Int {
	return a.Mul(b).Quo(WadScale)
}

// DivWad returns a * WAD / b, truncating toward zero. Panics on zero b, so
// callers guard the divisor the same way they would any Quo.
func DivWad(a, b sdkmath.Int) sdkmath.Int {
	return a.Mul(WadScale).Quo(b)
}

// MinInt returns the smaller of a and b.
func MinInt(a, b sdkmath.Int) sdkmath.Int {
	if a.LT(b) {
		return a
	}
	return b
}
