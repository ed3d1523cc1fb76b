package sortedlist

import (
	"slices"
	"sort"

	"github.com/xgzlucario/sortedlist/bcmp"
	"github.com/xgzlucario/sortedlist/internal/list"
)

// locateAfter return the first block whose last element is greater than v,
// or len(blocks) if v is not less than any of them.
func (l *SortedList[T]) locateAfter(v T) int {
	return sort.Search(len(l.blocks), func(i int) bool {
		return bcmp.Less(l.cmp, v, l.blocks[i].Last())
	})
}

// Insert add v to the list. Equal elements are kept, and v is placed after
// every element already equal to it.
func (l *SortedList[T]) Insert(v T) {
	i := l.locateAfter(v)
	if i == len(l.blocks) {
		// first insert is a special case.
		if i == 0 {
			b := list.New[T](l.blockSize)
			b = append(b, v)
			l.blocks = append(l.blocks, b)
			l.length++
			return
		}
		i--
	}

	if l.blocks[i].Len() >= l.blockSize {
		l.split(i)

		// a single element block splits into an empty lower half.
		if l.blocks[i].Len() == 0 {
			if bcmp.LessEqual(l.cmp, l.blocks[i+1].Last(), v) {
				l.blocks[i], l.blocks[i+1] = l.blocks[i+1], l.blocks[i]
				i++
			}
		} else if bcmp.LessEqual(l.cmp, l.blocks[i].Last(), v) {
			i++
		}
	}

	b := &l.blocks[i]
	b.InsertAt(list.SearchAfter(*b, v, l.cmp), v)
	l.length++
}

// split move the upper half of block i into a new block right after it.
func (l *SortedList[T]) split(i int) {
	upper := l.blocks[i].Split(l.blocks[i].Len()/2, l.blockSize)
	l.blocks = slices.Insert(l.blocks, i+1, upper)
	l.splits++

	l.logger.Debug("sortedlist: split block", "block", i, "blocks", len(l.blocks))
}
