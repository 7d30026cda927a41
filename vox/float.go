package vox

import "math"

// decodeFloat rebuilds a binary32 value from its raw bits field by field:
// sign * 2^(exponent-127) * 1.fraction. Normal numbers and zero come out
// exact; subnormal, infinite and NaN encodings are not special-cased. The
// fraction is the real binary one, not the fraction bits read as decimal
// digits after "1.", so values differ from readers that do the latter.
func decodeFloat(bits uint32) float32 {
	sign := 1.0
	if bits>>31 != 0 {
		sign = -1
	}
	exp := int((bits >> 23) & 0xFF)
	frac := bits & 0x7FFFFF
	if exp == 0 && frac == 0 {
		return float32(math.Copysign(0, sign))
	}
	mant := 1 + float64(frac)/(1<<23)
	return float32(sign * math.Ldexp(mant, exp-127))
}
