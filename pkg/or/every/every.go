package every

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// Every is an immutable, ordered sequence that always holds at least one element.
// The zero value is One of the zero T.
type Every[T any] struct {
	head T
	tail []T
}

// One creates an Every with exactly one element
func One[T any](a T) Every[T] {
	return Every[T]{head: a}
}

// Many creates an Every with two or more elements
func Many[T any](first, second T, rest ...T) Every[T] {
	tail := make([]T, 0, 1+len(rest))
	tail = append(tail, second)
	tail = append(tail, rest...)
	return Every[T]{head: first, tail: tail}
}

// From builds an Every from a slice. It reports false for an empty slice.
func From[T any](xs []T) (Every[T], bool) {
	if len(xs) == 0 {
		return Every[T]{}, false
	}
	return fromParts(xs[0], xs[1:]), true
}

func fromParts[T any](head T, tail []T) Every[T] {
	if len(tail) == 0 {
		return Every[T]{head: head}
	}
	return Every[T]{head: head, tail: append([]T(nil), tail...)}
}

// IsOne reports whether e holds exactly one element
func (e Every[T]) IsOne() bool {
	return len(e.tail) == 0
}

// IsMany reports whether e holds two or more elements
func (e Every[T]) IsMany() bool {
	return len(e.tail) > 0
}

func (e Every[T]) Len() int {
	return 1 + len(e.tail)
}

func (e Every[T]) Head() T {
	return e.head
}

// Tail returns a copy of every element after the first. Empty for One.
func (e Every[T]) Tail() []T {
	return append([]T{}, e.tail...)
}

// At returns the element at index i
func (e Every[T]) At(i int) (T, bool) {
	switch {
	case i == 0:
		return e.head, true
	case i > 0 && i <= len(e.tail):
		return e.tail[i-1], true
	default:
		var zero T
		return zero, false
	}
}

// ToSlice returns a fresh slice holding the elements in order
func (e Every[T]) ToSlice() []T {
	out := make([]T, 0, e.Len())
	out = append(out, e.head)
	return append(out, e.tail...)
}

// All yields the elements in order
func (e Every[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(e.head) {
			return
		}
		for _, v := range e.tail {
			if !yield(v) {
				return
			}
		}
	}
}

// Concat returns the elements of e followed by the elements of other.
func (e Every[T]) Concat(other Every[T]) Every[T] {
	tail := make([]T, 0, len(e.tail)+other.Len())
	tail = append(tail, e.tail...)
	tail = append(tail, other.head)
	tail = append(tail, other.tail...)
	return Every[T]{head: e.head, tail: tail}
}

// Append returns e with elems added at the end
func (e Every[T]) Append(elems ...T) Every[T] {
	if len(elems) == 0 {
		return e
	}
	tail := make([]T, 0, len(e.tail)+len(elems))
	tail = append(tail, e.tail...)
	tail = append(tail, elems...)
	return Every[T]{head: e.head, tail: tail}
}

// String renders One(a) or Many(a, b, ...)
func (e Every[T]) String() string {
	if e.IsOne() {
		return fmt.Sprintf("One(%v)", e.head)
	}
	parts := make([]string, 0, e.Len())
	for v := range e.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "Many(" + strings.Join(parts, ", ") + ")"
}

// MarshalJSON encodes e as a JSON array
func (e Every[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToSlice())
}

// Map applies f to every element, keeping order and shape.
func Map[T, U any](e Every[T], f func(T) U) Every[U] {
	out := Every[U]{head: f(e.head)}
	if len(e.tail) > 0 {
		out.tail = make([]U, len(e.tail))
		for i, v := range e.tail {
			out.tail[i] = f(v)
		}
	}
	return out
}

// Equal reports whether a and b hold the same elements in the same order
func Equal[T comparable](a, b Every[T]) bool {
	if a.Len() != b.Len() || a.head != b.head {
		return false
	}
	for i := range a.tail {
		if a.tail[i] != b.tail[i] {
			return false
		}
	}
	return true
}
