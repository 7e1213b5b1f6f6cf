// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ndarray

import "math"

// Range returns the smallest and largest finite values in data. ok is
// false when data holds no finite value.
func Range[T ~float32 | ~float64](data []T) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
