package or

import (
	"fmt"

	"github.com/ib-77/orly/pkg/or/every"
	"github.com/ib-77/orly/pkg/or/opt"
)

// Pair is the Good payload of Zip
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is the Good payload of Zip3
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Accumulating wraps the Bad payload in every.One so input can take part in
// Zip, Transform, Validate and Combine.
func Accumulating[G, B any](input Or[G, B]) Or[G, every.Every[B]] {
	if input.isGood {
		return Good[G, every.Every[B]](input.good)
	}
	return Bad[G](every.One(input.bad))
}

// mergeBad joins the Bad sides of two results, left errors first.
// ok is false when both are Good.
func mergeBad[A, B, ERR any](left Or[A, every.Every[ERR]], right Or[B, every.Every[ERR]]) (errs every.Every[ERR], ok bool) {
	switch {
	case left.isGood && right.isGood:
		return errs, false
	case left.isGood:
		return right.bad, true
	case right.isGood:
		return left.bad, true
	default:
		return left.bad.Concat(right.bad), true
	}
}

// Zip pairs two Good payloads. Unlike FlatMap it never short-circuits: when
// both sides are Bad the result carries the left errors followed by the right.
func Zip[G, H, ERR any](left Or[G, every.Every[ERR]], right Or[H, every.Every[ERR]]) Or[Pair[G, H], every.Every[ERR]] {
	if errs, ok := mergeBad(left, right); ok {
		return Bad[Pair[G, H]](errs)
	}
	return Good[Pair[G, H], every.Every[ERR]](Pair[G, H]{First: left.good, Second: right.good})
}

func Zip3[A, B, C, ERR any](a Or[A, every.Every[ERR]], b Or[B, every.Every[ERR]],
	c Or[C, every.Every[ERR]]) Or[Triple[A, B, C], every.Every[ERR]] {

	ab := Zip(a, b)
	if errs, ok := mergeBad(ab, c); ok {
		return Bad[Triple[A, B, C]](errs)
	}
	return Good[Triple[A, B, C], every.Every[ERR]](Triple[A, B, C]{First: a.good, Second: b.good, Third: c.good})
}

// Transform applies the function held by fn to the Good payload of left.
// Errors accumulate the same way as Zip, left first.
func Transform[G, H, ERR any](left Or[G, every.Every[ERR]], fn Or[func(G) H, every.Every[ERR]]) Or[H, every.Every[ERR]] {
	if errs, ok := mergeBad(left, fn); ok {
		return Bad[H](errs)
	}
	return Good[H, every.Every[ERR]](fn.good(left.good))
}

// WithGood2 combines two results with f when both are Good, accumulating errors otherwise.
func WithGood2[A, B, Out, ERR any](a Or[A, every.Every[ERR]], b Or[B, every.Every[ERR]],
	f func(A, B) Out) Or[Out, every.Every[ERR]] {
	return Map(Zip(a, b), func(p Pair[A, B]) Out {
		return f(p.First, p.Second)
	})
}

func WithGood3[A, B, C, Out, ERR any](a Or[A, every.Every[ERR]], b Or[B, every.Every[ERR]],
	c Or[C, every.Every[ERR]], f func(A, B, C) Out) Or[Out, every.Every[ERR]] {
	return Map(Zip3(a, b, c), func(t Triple[A, B, C]) Out {
		return f(t.First, t.Second, t.Third)
	})
}

// Validate runs every validation against a Good payload and collects each
// reported error in the order the validations are listed. With no errors the
// original value passes through. A Bad input is returned as is and no
// validation runs.
func Validate[G, ERR any](input Or[G, every.Every[ERR]], validations ...func(g G) opt.Option[ERR]) Or[G, every.Every[ERR]] {
	if !input.isGood {
		return input
	}

	var errs []ERR
	for _, validate := range validations {
		if err, failed := validate(input.good).Get(); failed {
			errs = append(errs, err)
		}
	}

	if collected, ok := every.From(errs); ok {
		return Bad[G](collected)
	}
	return input
}
