package or

// Map transforms the Good payload. A Bad passes through and f is not called.
func Map[G, H, B any](input Or[G, B], onGood func(g G) H) Or[H, B] {
	if input.isGood {
		return Good[H, B](onGood(input.good))
	}
	return Bad[H](input.bad)
}

// FlatMap chains a computation that can fail. The first Bad stops the chain
// and is returned unchanged; errors are never accumulated here.
func FlatMap[G, H, B any](input Or[G, B], onGood func(g G) Or[H, B]) Or[H, B] {
	if input.isGood {
		return onGood(input.good)
	}
	return Bad[H](input.bad)
}

// BadMap transforms the Bad payload. A Good passes through.
func BadMap[G, B, C any](input Or[G, B], onBad func(b B) C) Or[G, C] {
	if input.isGood {
		return Good[G, C](input.good)
	}
	return Bad[G](onBad(input.bad))
}

// Fold reduces input to a single value
func Fold[G, B, Out any](input Or[G, B], onGood func(g G) Out, onBad func(b B) Out) Out {
	if input.isGood {
		return onGood(input.good)
	}
	return onBad(input.bad)
}

// FromTry converts a (value, error) pair: a non-nil err becomes Bad(err).
func FromTry[G any](g G, err error) Or[G, error] {
	if err != nil {
		return Bad[G](err)
	}
	return Good[G, error](g)
}

// ToTry converts input into a (value, error) pair. A Bad holding a nil
// error, such as the zero Or[G, error], reports ErrNilBad so it never
// reads as a success.
func ToTry[G any, B error](input Or[G, B]) (G, error) {
	if input.isGood {
		return input.good, nil
	}
	var zero G
	if any(input.bad) == nil {
		return zero, ErrNilBad
	}
	return zero, input.bad
}
