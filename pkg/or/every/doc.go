// Package every provides Every[T], an ordered sequence that can never be empty.
//
// It has two shapes:
// - One: exactly one element
// - Many: a first and second element plus zero or more further elements
//
// Every is the error accumulator of package or: Concat keeps the left
// operand's elements before the right operand's, so merging failures from
// independent checks never loses or reorders them.
//
// FromErrors and Join convert between Every[error] and a joined error.
package every
