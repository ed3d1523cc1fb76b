// Package bcmp is comparator helpers for three-way compare functions.
package bcmp

import "bytes"

// Func is a three-way compare function, negative when a < b.
type Func[T any] func(a, b T) int

// Bytes is the comparator of []byte keys.
func Bytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Reverse return a comparator in descending order.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Less return a < b.
func Less[T any](f Func[T], a, b T) bool {
	return f(a, b) < 0
}

// LessEqual return a <= b.
func LessEqual[T any](f Func[T], a, b T) bool {
	return f(a, b) <= 0
}

// Equal return a == b.
func Equal[T any](f Func[T], a, b T) bool {
	return f(a, b) == 0
}

// Between return target is in [a,b].
func Between[T any](f Func[T], target, a, b T) bool {
	return LessEqual(f, a, target) && LessEqual(f, target, b)
}

// Min
func Min[T any](f Func[T], a, b T) T {
	if LessEqual(f, a, b) {
		return a
	}
	return b
}

// Max
func Max[T any](f Func[T], a, b T) T {
	if LessEqual(f, b, a) {
		return a
	}
	return b
}
