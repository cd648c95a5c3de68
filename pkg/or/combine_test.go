package or

import (
	"math"
	"strconv"
	"testing"

	"github.com/ib-77/orly/pkg/or/every"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePositive(s string) Or[int, msgs] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return bad[int]("not a number: " + s)
	}
	if n <= 0 {
		return bad[int]("not positive: " + s)
	}
	return good(n)
}

func TestCombine_Slice_AllGood(t *testing.T) {
	t.Parallel()
	in := []Or[int, msgs]{good(1), good(2), good(3)}

	assert.Equal(t, good([]int{1, 2, 3}), Combine(SliceCombinable[int, string](), in))
}

func TestCombine_Slice_CollectsEveryFailure(t *testing.T) {
	t.Parallel()
	in := []Or[int, msgs]{good(1), bad[int]("e1"), good(3), bad[int]("e2")}

	got := Combine(SliceCombinable[int, string](), in)

	assert.Equal(t, bad[[]int]("e1", "e2"), got)
}

func TestCombine_Slice_ManyErrorsPerElement(t *testing.T) {
	t.Parallel()
	in := []Or[int, msgs]{bad[int]("a1", "a2"), good(2), bad[int]("b1"), bad[int]("c1", "c2", "c3")}

	got := Combine(SliceCombinable[int, string](), in)

	errs, ok := got.BadValue()
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2", "c3"}, errs.ToSlice())
}

func TestCombine_Slice_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, good([]int{}), Combine(SliceCombinable[int, string](), []Or[int, msgs]{}))
	assert.Equal(t, good([]int(nil)), Combine(SliceCombinable[int, string](), nil))
}

func TestCombine_Map_OrderedByKey(t *testing.T) {
	t.Parallel()
	in := map[string]Or[int, msgs]{
		"c": bad[int]("from c"),
		"a": bad[int]("from a"),
		"b": good(2),
	}

	for range 20 {
		assert.Equal(t, bad[map[string]int]("from a", "from c"), Combine(MapCombinable[string, int, string](), in))
	}
}

func TestCombine_Map_AllGood(t *testing.T) {
	t.Parallel()
	in := map[string]Or[int, msgs]{"x": good(1), "y": good(2)}

	assert.Equal(t, good(map[string]int{"x": 1, "y": 2}), Combine(MapCombinable[string, int, string](), in))
}

func TestCombine_Map_NaNKey(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	in := map[float64]Or[int, msgs]{nan: good(1), 2: good(2)}

	got := Combine(MapCombinable[float64, int, string](), in)

	require.True(t, got.IsGood(), "no element failed, got %v", got)
	rebuilt := got.Get()
	assert.Len(t, rebuilt, 2)
	assert.Equal(t, 2, rebuilt[2])
	for k, v := range rebuilt {
		if math.IsNaN(k) {
			assert.Equal(t, 1, v)
		}
	}

	// a second NaN key adds an entry; NaN sorts before every other key
	in[3] = bad[int]("from 3")
	in[nan] = bad[int]("from NaN")
	require.Len(t, in, 4)
	errs, failed := Combine(MapCombinable[float64, int, string](), in).BadValue()
	require.True(t, failed)
	assert.Equal(t, []string{"from NaN", "from 3"}, errs.ToSlice())
}

func TestCombine_Every(t *testing.T) {
	t.Parallel()
	capability := EveryCombinable[int, string]()

	assert.Equal(t, good(every.Many(1, 2, 3)), Combine(capability, every.Many(good(1), good(2), good(3))))
	assert.Equal(t, good(every.One(1)), Combine(capability, every.One(good(1))))
	assert.Equal(t, bad[every.Every[int]]("e1", "e2"),
		Combine(capability, every.Many(bad[int]("e1"), good(2), bad[int]("e2"))))
}

func TestValidateBy_Slice(t *testing.T) {
	t.Parallel()
	capability := SliceValidatable[string, int, string]()

	assert.Equal(t, good([]int{1, 2, 3}), ValidateBy(capability, []string{"1", "2", "3"}, parsePositive))
	assert.Equal(t,
		bad[[]int]("not a number: x", "not positive: -4"),
		ValidateBy(capability, []string{"1", "x", "3", "-4"}, parsePositive))
}

func TestValidateBy_CallsFunctionForEveryElement(t *testing.T) {
	t.Parallel()
	var seen []string
	spy := func(s string) Or[int, msgs] {
		seen = append(seen, s)
		return parsePositive(s)
	}

	ValidateBy(SliceValidatable[string, int, string](), []string{"x", "y", "1", "z"}, spy)

	assert.Equal(t, []string{"x", "y", "1", "z"}, seen, "no short-circuit, traversal order")
}

func TestValidateBy_Map(t *testing.T) {
	t.Parallel()
	in := map[int]string{3: "oops", 1: "10", 2: "0"}

	got := ValidateBy(MapValidatable[int, string, int, string](), in, parsePositive)

	assert.Equal(t, bad[map[int]int]("not positive: 0", "not a number: oops"), got)
}

func TestValidateBy_Every(t *testing.T) {
	t.Parallel()

	got := ValidateBy(EveryValidatable[string, int, string](), every.Many("4", "5"), parsePositive)

	assert.Equal(t, good(every.Many(4, 5)), got)
}

// ValidateBy must equal mapping the function over the container and then combining.
func TestValidateBy_EquivalentToMapThenCombine(t *testing.T) {
	t.Parallel()
	inputs := [][]string{
		{},
		{"1"},
		{"1", "2", "3"},
		{"x"},
		{"1", "x", "0", "7", "y"},
	}

	for _, in := range inputs {
		mapped := make([]Or[int, msgs], len(in))
		for i, s := range in {
			mapped[i] = parsePositive(s)
		}

		assert.Equal(t,
			Combine(SliceCombinable[int, string](), mapped),
			ValidateBy(SliceValidatable[string, int, string](), in, parsePositive),
			"input %v", in)
	}

	m := map[string]string{"b": "x", "a": "2", "c": "-1"}
	mappedM := make(map[string]Or[int, msgs], len(m))
	for k, s := range m {
		mappedM[k] = parsePositive(s)
	}
	assert.Equal(t,
		Combine(MapCombinable[string, int, string](), mappedM),
		ValidateBy(MapValidatable[string, string, int, string](), m, parsePositive))
}

type rgb[T any] struct {
	R, G, B T
}

func rgbShape[X, Y any]() Shape[rgb[X], rgb[Y], X, Y] {
	return ShapeFunc[rgb[X], rgb[Y], X, Y](func(c rgb[X], f func(X) Y) rgb[Y] {
		r := f(c.R)
		g := f(c.G)
		b := f(c.B)
		return rgb[Y]{R: r, G: g, B: b}
	})
}

func TestCombine_CustomContainer(t *testing.T) {
	t.Parallel()
	combinable := CombinableOf[rgb[Or[int, msgs]], rgb[int], int, string](rgbShape[Or[int, msgs], int]())
	validatable := ValidatableOf[rgb[string], rgb[int], string, int, string](rgbShape[string, int]())

	assert.Equal(t,
		good(rgb[int]{R: 1, G: 2, B: 3}),
		Combine(combinable, rgb[Or[int, msgs]]{R: good(1), G: good(2), B: good(3)}))

	assert.Equal(t,
		bad[rgb[int]]("not a number: red", "not positive: -1"),
		ValidateBy(validatable, rgb[string]{R: "red", G: "-1", B: "9"}, parsePositive))
}
