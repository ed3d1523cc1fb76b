package sortedlist

import (
	"slices"
	"sort"

	"github.com/xgzlucario/sortedlist/internal/list"
)

// locate return the first block whose last element is not less than key,
// or len(blocks) if key is greater than all of them.
func locate[T, K any](blocks []list.Block[T], key K, cmp func(T, K) int) int {
	return sort.Search(len(blocks), func(i int) bool {
		return cmp(blocks[i].Last(), key) >= 0
	})
}

// find return the position of the leftmost element equal to key.
func find[T, K any](blocks []list.Block[T], key K, cmp func(T, K) int) (block, pos int, ok bool) {
	block = locate(blocks, key, cmp)
	if block == len(blocks) {
		return block, 0, false
	}
	pos, ok = list.Search(blocks[block], key, cmp)
	return
}

// Contains
func (l *SortedList[T]) Contains(v T) bool {
	_, _, ok := find(l.blocks, v, l.cmp)
	return ok
}

// ContainsFunc is like Contains but looks up a key of another type.
// cmp(e, key) must order elements the same way as the list comparator.
func ContainsFunc[T, K any](l *SortedList[T], key K, cmp func(T, K) int) bool {
	_, _, ok := find(l.blocks, key, cmp)
	return ok
}

// Remove delete the first element equal to v, and return whether one was found.
func (l *SortedList[T]) Remove(v T) bool {
	return RemoveFunc(l, v, l.cmp)
}

// RemoveFunc is like Remove but looks up a key of another type.
// cmp(e, key) must order elements the same way as the list comparator.
func RemoveFunc[T, K any](l *SortedList[T], key K, cmp func(T, K) int) bool {
	block, pos, ok := find(l.blocks, key, cmp)
	if !ok {
		return false
	}
	l.removeAt(block, pos)
	return true
}

// removeAt remove the element and repair the block if it underflows.
func (l *SortedList[T]) removeAt(block, pos int) {
	l.blocks[block].RemoveAt(pos)
	l.length--

	// the first block has no left neighbor, it is only dropped when empty.
	if block == 0 {
		if l.blocks[0].Len() == 0 {
			l.blocks = slices.Delete(l.blocks, 0, 1)
			l.logger.Debug("sortedlist: drop empty block", "blocks", len(l.blocks))
		}
		return
	}

	if n := l.blocks[block].Len(); n == 0 || n < l.blockSize/2 {
		l.repair(block)
	}
}

// repair fix the underflow of block i with its left neighbor.
func (l *SortedList[T]) repair(i int) {
	left, cur := &l.blocks[i-1], &l.blocks[i]
	total := left.Len() + cur.Len()

	// easy case, merge into the left block.
	if total <= l.blockSize {
		left.Append(*cur)
		l.blocks = slices.Delete(l.blocks, i, i+1)
		l.merges++

		l.logger.Debug("sortedlist: merge block", "block", i, "blocks", len(l.blocks))
		return
	}

	// hard case, a merge would overflow, so move the tail of the left block over.
	moved := cur.MoveTail(left, total/2)
	l.redistributions++

	l.logger.Debug("sortedlist: redistribute block", "block", i, "moved", moved)
}
