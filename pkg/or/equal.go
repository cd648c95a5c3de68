package or

import "github.com/ib-77/orly/pkg/or/every"

// EqualFunc reports whether a and b are the same variant with payloads
// equal under goodEq or badEq.
func EqualFunc[G, B any](a, b Or[G, B], goodEq func(G, G) bool, badEq func(B, B) bool) bool {
	if a.isGood != b.isGood {
		return false
	}
	if a.isGood {
		return goodEq(a.good, b.good)
	}
	return badEq(a.bad, b.bad)
}

// Equal compares accumulated results, which cannot use == because
// every.Every holds a slice. Results with comparable payloads compare with ==.
func Equal[G, E comparable](a, b Or[G, every.Every[E]]) bool {
	return EqualFunc(a, b,
		func(x, y G) bool { return x == y },
		every.Equal[E])
}
