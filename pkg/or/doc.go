// Package or provides Or[G, B], a result that is either Good (success, G)
// or Bad (failure, B), and the combinators that join many independent
// results without losing any of their failures.
//
// Two propagation policies are kept apart:
// - Fail-fast: Map, FlatMap, BadMap stop at the first Bad and return it unchanged
// - Fail-slow: Zip, Zip3, Transform, WithGood2/3, Validate, Combine, ValidateBy
//   evaluate every input and merge every error into one every.Every, in order
//
// Accumulating promotes Or[G, B] to Or[G, every.Every[B]], the shape the
// fail-slow combinators work on.
//
// Combine and ValidateBy are container-agnostic: they take a Combinable or
// Validatable capability. Slices, ordered-key maps and every.Every have
// ready-made capabilities; any other container can supply a Shape and use
// CombinableOf/ValidatableOf.
//
// Conversions: FromEither/ToEither (Right is Good), FromTry/ToTry
// ((value, error) pairs), ToOption, ToSeq.
package or
