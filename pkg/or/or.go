package or

import (
	"errors"
	"fmt"

	"github.com/ib-77/orly/pkg/or/either"
	"github.com/ib-77/orly/pkg/or/opt"
)

// ErrNoSuchElement is the panic value of Get on a Bad.
var ErrNoSuchElement = errors.New("or: Get called on Bad")

// ErrNilBad is returned by ToTry for a Bad whose error payload is nil.
var ErrNilBad = errors.New("or: Bad holds a nil error")

// Or holds either a Good value of type G or a Bad value of type B.
// The zero value is Bad(zero B).
type Or[G, B any] struct {
	good   G
	bad    B
	isGood bool
}

func Good[G, B any](g G) Or[G, B] {
	return Or[G, B]{good: g, isGood: true}
}

func Bad[G, B any](b B) Or[G, B] {
	return Or[G, B]{bad: b}
}

// FromEither maps Right to Good and Left to Bad
func FromEither[B, G any](e either.Either[B, G]) Or[G, B] {
	if g, ok := e.RightValue(); ok {
		return Good[G, B](g)
	}
	b, _ := e.LeftValue()
	return Bad[G](b)
}

func (o Or[G, B]) IsGood() bool {
	return o.isGood
}

func (o Or[G, B]) IsBad() bool {
	return !o.isGood
}

// GoodValue returns the Good payload and true, or the zero G and false
func (o Or[G, B]) GoodValue() (G, bool) {
	return o.good, o.isGood
}

// BadValue returns the Bad payload and true, or the zero B and false
func (o Or[G, B]) BadValue() (B, bool) {
	return o.bad, !o.isGood
}

// Get returns the Good payload. It panics with ErrNoSuchElement on a Bad:
// check IsGood first or use GoodValue/GetOrElse.
func (o Or[G, B]) Get() G {
	if !o.isGood {
		panic(ErrNoSuchElement)
	}
	return o.good
}

func (o Or[G, B]) GetOrElse(def G) G {
	if o.isGood {
		return o.good
	}
	return def
}

// OrElse returns o if it is Good, otherwise alternative
func (o Or[G, B]) OrElse(alternative Or[G, B]) Or[G, B] {
	if o.isGood {
		return o
	}
	return alternative
}

// Foreach calls f with the Good payload. Nothing happens for a Bad.
func (o Or[G, B]) Foreach(f func(G)) {
	if o.isGood {
		f(o.good)
	}
}

// Filter returns Some(o) when o is Good and f holds, None otherwise.
// A Good that fails the predicate is dropped, not turned into a Bad.
func (o Or[G, B]) Filter(f func(G) bool) opt.Option[Or[G, B]] {
	if o.isGood && f(o.good) {
		return opt.Some(o)
	}
	return opt.None[Or[G, B]]()
}

func (o Or[G, B]) Exists(f func(G) bool) bool {
	return o.isGood && f(o.good)
}

// Forall is vacuously true for a Bad
func (o Or[G, B]) Forall(f func(G) bool) bool {
	return !o.isGood || f(o.good)
}

func (o Or[G, B]) ToOption() opt.Option[G] {
	if o.isGood {
		return opt.Some(o.good)
	}
	return opt.None[G]()
}

// ToSeq returns a one-element slice for Good and an empty slice for Bad
func (o Or[G, B]) ToSeq() []G {
	if o.isGood {
		return []G{o.good}
	}
	return []G{}
}

// ToEither maps Good to Right and Bad to Left
func (o Or[G, B]) ToEither() either.Either[B, G] {
	if o.isGood {
		return either.Right[B](o.good)
	}
	return either.Left[B, G](o.bad)
}

// Swap turns Good(g) into Bad(g) and Bad(b) into Good(b)
func (o Or[G, B]) Swap() Or[B, G] {
	if o.isGood {
		return Bad[B](o.good)
	}
	return Good[B, G](o.bad)
}

// Recover turns a Bad into a Good using f
func (o Or[G, B]) Recover(f func(B) G) Or[G, B] {
	if o.isGood {
		return o
	}
	return Good[G, B](f(o.bad))
}

func (o Or[G, B]) RecoverWith(f func(B) Or[G, B]) Or[G, B] {
	if o.isGood {
		return o
	}
	return f(o.bad)
}

func (o Or[G, B]) String() string {
	if o.isGood {
		return fmt.Sprintf("Good(%v)", o.good)
	}
	return fmt.Sprintf("Bad(%v)", o.bad)
}
