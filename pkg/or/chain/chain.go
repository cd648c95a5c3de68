package chain

import (
	"github.com/ib-77/orly/pkg/or"
)

// Chain wraps an or.Or to enable fluent fail-fast chaining
type Chain[T, B any] struct {
	result or.Or[T, B]
}

// Start creates a new chain from an or.Or
func Start[T, B any](result or.Or[T, B]) *Chain[T, B] {
	return &Chain[T, B]{result: result}
}

// FromValue creates a new chain from a Good value
func FromValue[T, B any](value T) *Chain[T, B] {
	return &Chain[T, B]{result: or.Good[T, B](value)}
}

// Result returns the underlying or.Or
func (c *Chain[T, B]) Result() or.Or[T, B] {
	return c.result
}

// Then chains a function that returns or.Or[U, B]
func Then[T, U, B any](c *Chain[T, B], onGood func(T) or.Or[U, B]) *Chain[U, B] {
	return &Chain[U, B]{result: or.FlatMap(c.result, onGood)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnGood func(T) (U, error)) *Chain[U, error] {
	return Then(c, func(t T) or.Or[U, error] {
		return or.FromTry(tryOnGood(t))
	})
}

// Map chains a pure transformation function
func Map[T, U, B any](c *Chain[T, B], onGood func(T) U) *Chain[U, B] {
	return &Chain[U, B]{result: or.Map(c.result, onGood)}
}

// Ensure performs a side effect on a Good value without changing the result
func (c *Chain[T, B]) Ensure(onGood func(T)) *Chain[T, B] {
	c.result.Foreach(onGood)
	return &Chain[T, B]{result: c.result}
}

// RepeatUntil applies onGood while the result stays Good and until holds
func (c *Chain[T, B]) RepeatUntil(onGood func(T) or.Or[T, B], until func(T) bool) *Chain[T, B] {
	if c.result.IsBad() {
		return c
	}

	for {
		c = Then(c, onGood)

		if c.result.IsBad() || !until(c.result.Get()) {
			return c
		}
	}
}

// Finally collapses the chain into a final value using or.Fold
func Finally[T, U, B any](c *Chain[T, B], onGood func(T) U, onBad func(B) U) U {
	return or.Fold(c.result, onGood, onBad)
}
