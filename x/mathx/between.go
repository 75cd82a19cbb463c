// Package mathx holds small generic numeric helpers.
package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi. The bounds may be given in either order.
func Between[T constraints.Integer](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}
