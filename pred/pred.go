// Package pred provides ready-made validator predicates for numeric options,
// for use with the option Validate method:
//
//	clipper.AddOption[int](cli, "--level", "-l").
//		Set("level", &level).
//		Validate("[1; 10]", pred.IBetween(1, 10))
//
// Each constructor returns a closure capturing its bounds, so the same
// predicate can be reused across options and parsers.
package pred

// Number is the set of types the predicates operate on. Booleans and strings
// are excluded; allow-lists cover those.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Between returns a predicate accepting values strictly between lo and hi.
// It panics when lo is not less than hi.
func Between[T Number](lo, hi T) func(T) bool {
	checkBounds(lo, hi)
	return func(v T) bool { return lo < v && v < hi }
}

// IBetween returns a predicate accepting values between lo and hi, bounds
// included. It panics when lo is not less than hi.
func IBetween[T Number](lo, hi T) func(T) bool {
	checkBounds(lo, hi)
	return func(v T) bool { return lo <= v && v <= hi }
}

// GreaterThan returns a predicate accepting values strictly greater than n.
func GreaterThan[T Number](n T) func(T) bool {
	return func(v T) bool { return v > n }
}

// IGreaterThan returns a predicate accepting values greater than or equal
// to n.
func IGreaterThan[T Number](n T) func(T) bool {
	return func(v T) bool { return v >= n }
}

// LessThan returns a predicate accepting values strictly less than n.
func LessThan[T Number](n T) func(T) bool {
	return func(v T) bool { return v < n }
}

// ILessThan returns a predicate accepting values less than or equal to n.
func ILessThan[T Number](n T) func(T) bool {
	return func(v T) bool { return v <= n }
}

func checkBounds[T Number](lo, hi T) {
	if lo >= hi {
		panic("pred: lower bound must be less than upper bound")
	}
}
