package or

import (
	"cmp"
	"maps"
	"slices"

	"github.com/ib-77/orly/pkg/or/every"
)

// Shape describes how to walk a container CA of A elements in a stable order
// and rebuild it as a container CB of B elements with the same layout.
// Rebuild must call f exactly once per element, in traversal order.
type Shape[CA, CB, A, B any] interface {
	Rebuild(container CA, f func(A) B) CB
}

// ShapeFunc adapts a function to Shape
type ShapeFunc[CA, CB, A, B any] func(container CA, f func(A) B) CB

func (fn ShapeFunc[CA, CB, A, B]) Rebuild(container CA, f func(A) B) CB {
	return fn(container, f)
}

// Combinable folds a container of results into one result holding the
// rebuilt container of Good values, or every error in traversal order.
type Combinable[CO, CG, ERR any] interface {
	Combined(container CO) Or[CG, every.Every[ERR]]
}

// Validatable applies a validating function across a container and folds
// the outcomes the way Combinable does.
type Validatable[CG, CH, G, H, ERR any] interface {
	ValidatedBy(container CG, fn func(G) Or[H, every.Every[ERR]]) Or[CH, every.Every[ERR]]
}

// Combine dispatches onto the container's capability
func Combine[CO, CG, ERR any](capability Combinable[CO, CG, ERR], container CO) Or[CG, every.Every[ERR]] {
	return capability.Combined(container)
}

// ValidateBy applies fn to every element without short-circuiting and folds
// the results like Combine.
func ValidateBy[CG, CH, G, H, ERR any](capability Validatable[CG, CH, G, H, ERR], container CG,
	fn func(G) Or[H, every.Every[ERR]]) Or[CH, every.Every[ERR]] {
	return capability.ValidatedBy(container, fn)
}

// accumulator collects errors while a Shape rebuilds a container, so that
// successes and failures are gathered in a single pass and the same order.
type accumulator[ERR any] struct {
	errs   every.Every[ERR]
	failed bool
}

func (a *accumulator[ERR]) add(errs every.Every[ERR]) {
	if a.failed {
		a.errs = a.errs.Concat(errs)
		return
	}
	a.errs, a.failed = errs, true
}

func unwrapInto[G, ERR any](acc *accumulator[ERR]) func(Or[G, every.Every[ERR]]) G {
	return func(o Or[G, every.Every[ERR]]) G {
		if !o.isGood {
			acc.add(o.bad)
		}
		return o.good
	}
}

type shapeCapability[CO, CG, G, ERR any] struct {
	shape Shape[CO, CG, Or[G, every.Every[ERR]], G]
}

func (c shapeCapability[CO, CG, G, ERR]) Combined(container CO) Or[CG, every.Every[ERR]] {
	acc := &accumulator[ERR]{}
	rebuilt := c.shape.Rebuild(container, unwrapInto[G](acc))
	if acc.failed {
		return Bad[CG](acc.errs)
	}
	return Good[CG, every.Every[ERR]](rebuilt)
}

type shapeValidation[CG, CH, G, H, ERR any] struct {
	shape Shape[CG, CH, G, H]
}

func (v shapeValidation[CG, CH, G, H, ERR]) ValidatedBy(container CG, fn func(G) Or[H, every.Every[ERR]]) Or[CH, every.Every[ERR]] {
	acc := &accumulator[ERR]{}
	unwrap := unwrapInto[H](acc)
	rebuilt := v.shape.Rebuild(container, func(g G) H {
		return unwrap(fn(g))
	})
	if acc.failed {
		return Bad[CH](acc.errs)
	}
	return Good[CH, every.Every[ERR]](rebuilt)
}

// CombinableOf builds a Combinable for any container that can supply a Shape
func CombinableOf[CO, CG, G, ERR any](shape Shape[CO, CG, Or[G, every.Every[ERR]], G]) Combinable[CO, CG, ERR] {
	return shapeCapability[CO, CG, G, ERR]{shape: shape}
}

// ValidatableOf builds a Validatable for any container that can supply a Shape
func ValidatableOf[CG, CH, G, H, ERR any](shape Shape[CG, CH, G, H]) Validatable[CG, CH, G, H, ERR] {
	return shapeValidation[CG, CH, G, H, ERR]{shape: shape}
}

// SliceShape walks a slice by index. A nil slice rebuilds as nil.
func SliceShape[A, B any]() Shape[[]A, []B, A, B] {
	return ShapeFunc[[]A, []B, A, B](func(container []A, f func(A) B) []B {
		if container == nil {
			return nil
		}
		out := make([]B, len(container))
		for i, a := range container {
			out[i] = f(a)
		}
		return out
	})
}

type mapEntry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// MapShape walks a map in ascending key order and rebuilds it with the same keys.
// Values are taken during iteration, never looked up by key, so keys that do
// not equal themselves (NaN) still contribute their own element.
func MapShape[K cmp.Ordered, A, B any]() Shape[map[K]A, map[K]B, A, B] {
	return ShapeFunc[map[K]A, map[K]B, A, B](func(container map[K]A, f func(A) B) map[K]B {
		if container == nil {
			return nil
		}
		entries := make([]mapEntry[K, A], 0, len(container))
		for k, v := range maps.All(container) {
			entries = append(entries, mapEntry[K, A]{key: k, value: v})
		}
		slices.SortFunc(entries, func(a, b mapEntry[K, A]) int {
			return cmp.Compare(a.key, b.key)
		})

		out := make(map[K]B, len(container))
		for _, e := range entries {
			out[e.key] = f(e.value)
		}
		return out
	})
}

// EveryShape walks an Every in order; the rebuilt Every has the same length.
func EveryShape[A, B any]() Shape[every.Every[A], every.Every[B], A, B] {
	return ShapeFunc[every.Every[A], every.Every[B], A, B](every.Map[A, B])
}

func SliceCombinable[G, ERR any]() Combinable[[]Or[G, every.Every[ERR]], []G, ERR] {
	return CombinableOf[[]Or[G, every.Every[ERR]], []G, G, ERR](SliceShape[Or[G, every.Every[ERR]], G]())
}

func SliceValidatable[G, H, ERR any]() Validatable[[]G, []H, G, H, ERR] {
	return ValidatableOf[[]G, []H, G, H, ERR](SliceShape[G, H]())
}

func MapCombinable[K cmp.Ordered, G, ERR any]() Combinable[map[K]Or[G, every.Every[ERR]], map[K]G, ERR] {
	return CombinableOf[map[K]Or[G, every.Every[ERR]], map[K]G, G, ERR](MapShape[K, Or[G, every.Every[ERR]], G]())
}

func MapValidatable[K cmp.Ordered, G, H, ERR any]() Validatable[map[K]G, map[K]H, G, H, ERR] {
	return ValidatableOf[map[K]G, map[K]H, G, H, ERR](MapShape[K, G, H]())
}

func EveryCombinable[G, ERR any]() Combinable[every.Every[Or[G, every.Every[ERR]]], every.Every[G], ERR] {
	return CombinableOf[every.Every[Or[G, every.Every[ERR]]], every.Every[G], G, ERR](EveryShape[Or[G, every.Every[ERR]], G]())
}

func EveryValidatable[G, H, ERR any]() Validatable[every.Every[G], every.Every[H], G, H, ERR] {
	return ValidatableOf[every.Every[G], every.Every[H], G, H, ERR](EveryShape[G, H]())
}
