package list

import "slices"

// MaxPrealloc bounds the capacity reserved up front for a block,
// larger blocks grow by append.
const MaxPrealloc = 1024

// Block is a sorted run of elements, the storage unit of a block list.
type Block[T any] []T

// New
func New[T any](capacity int) Block[T] {
	return make(Block[T], 0, min(capacity, MaxPrealloc))
}

// Last return the max element of a non-empty block.
func (b Block[T]) Last() T {
	return b[len(b)-1]
}

// Len
func (b Block[T]) Len() int {
	return len(b)
}

// Search return the first position i where b[i] >= key, and whether b[i] == key.
func Search[T, K any](b Block[T], key K, cmp func(T, K) int) (int, bool) {
	low, high := 0, len(b)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp(b[mid], key) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, low < len(b) && cmp(b[low], key) == 0
}

// SearchAfter return the first position i where b[i] > key.
func SearchAfter[T, K any](b Block[T], key K, cmp func(T, K) int) int {
	low, high := 0, len(b)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp(b[mid], key) <= 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// InsertAt insert v at position i, shifting the tail right.
func (b *Block[T]) InsertAt(i int, v T) {
	var zero T
	*b = append(*b, zero)
	copy((*b)[i+1:], (*b)[i:])
	(*b)[i] = v
}

// RemoveAt remove the element at position i, shifting the tail left.
func (b *Block[T]) RemoveAt(i int) T {
	v := (*b)[i]
	copy((*b)[i:], (*b)[i+1:])

	var zero T
	(*b)[len(*b)-1] = zero
	*b = (*b)[:len(*b)-1]

	return v
}

// Split keep b[:mid] and return the upper half as a new block.
func (b *Block[T]) Split(mid, capacity int) Block[T] {
	n := len(*b) - mid
	upper := make(Block[T], n, max(min(capacity, MaxPrealloc), n))
	copy(upper, (*b)[mid:])

	clear((*b)[mid:])
	*b = (*b)[:mid]

	return upper
}

// Append add all elements of src to the end of b.
func (b *Block[T]) Append(src Block[T]) {
	*b = append(*b, src...)
}

// MoveTail move src[from:] to the front of b, keeping both in order.
func (b *Block[T]) MoveTail(src *Block[T], from int) int {
	n := len(*src) - from
	if n <= 0 {
		return 0
	}

	*b = slices.Insert(*b, 0, (*src)[from:]...)

	clear((*src)[from:])
	*src = (*src)[:from]

	return n
}
