// Package sortedlist is an in-memory sorted multiset stored as a flat list of
// sorted blocks, a two-level B-tree made only of contiguous slices.
//
// With a block size of about sqrt(n) every point operation costs O(sqrt(n))
// element moves in the worst case, and O(log n) comparisons.
package sortedlist

import (
	"cmp"
	"iter"
	"log/slog"

	"github.com/xgzlucario/sortedlist/bcmp"
	"github.com/xgzlucario/sortedlist/internal/list"
	"github.com/xgzlucario/sortedlist/option"
)

// SortedList keeps its elements in ascending order in blocks of at most
// BlockSize elements. Blocks are sorted internally and ordered among each
// other, so the last element of each block is its search key.
//
// A SortedList is not safe for concurrent use. Callers must serialize
// mutations themselves; readers may share a list only while no mutation
// is running.
type SortedList[T any] struct {
	blocks    []list.Block[T]
	cmp       bcmp.Func[T]
	blockSize int
	length    int

	splits          uint64
	merges          uint64
	redistributions uint64

	logger *slog.Logger
}

// Stats describes the block layout of a list.
type Stats struct {
	Len             int
	Blocks          int
	Splits          uint64
	Merges          uint64
	Redistributions uint64
}

// New create an empty list ordered by compare.
func New[T any](blockSize int, compare func(a, b T) int) (*SortedList[T], error) {
	return NewWithOption(&option.Option{BlockSize: blockSize}, compare)
}

// NewOrdered create an empty list in the natural order of T.
func NewOrdered[T cmp.Ordered](blockSize int) (*SortedList[T], error) {
	return New(blockSize, cmp.Compare[T])
}

// NewWithOption
func NewWithOption[T any](opt *option.Option, compare func(a, b T) int) (*SortedList[T], error) {
	if opt == nil {
		opt = option.DefaultOption
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, ErrNilComparator
	}

	return &SortedList[T]{
		cmp:       compare,
		blockSize: opt.BlockSize,
		logger:    opt.GetLogger(),
	}, nil
}

// Len
func (l *SortedList[T]) Len() int {
	return l.length
}

// BlockSize
func (l *SortedList[T]) BlockSize() int {
	return l.blockSize
}

// Stats
func (l *SortedList[T]) Stats() Stats {
	return Stats{
		Len:             l.length,
		Blocks:          len(l.blocks),
		Splits:          l.splits,
		Merges:          l.merges,
		Redistributions: l.redistributions,
	}
}

// Reset remove all elements, the block size is kept.
func (l *SortedList[T]) Reset() {
	clear(l.blocks)
	l.blocks = l.blocks[:0]
	l.length = 0
	l.splits, l.merges, l.redistributions = 0, 0, 0
}

// Min return the smallest element.
func (l *SortedList[T]) Min() (T, bool) {
	if len(l.blocks) == 0 {
		var zero T
		return zero, false
	}
	return l.blocks[0][0], true
}

// Max return the largest element.
func (l *SortedList[T]) Max() (T, bool) {
	if len(l.blocks) == 0 {
		var zero T
		return zero, false
	}
	return l.blocks[len(l.blocks)-1].Last(), true
}

// All return an iterator over all elements in ascending order.
// Each call starts a fresh pass. Mutating the list during a pass is not allowed.
func (l *SortedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, b := range l.blocks {
			for _, v := range b {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Slice return a copy of all elements in ascending order.
func (l *SortedList[T]) Slice() []T {
	res := make([]T, 0, l.length)
	for _, b := range l.blocks {
		res = append(res, b...)
	}
	return res
}
