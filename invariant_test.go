package sortedlist

import (
	"fmt"
	"testing"
)

// checkBlocks verify the block layout of l.
func checkBlocks[T any](l *SortedList[T]) error {
	total := 0
	for i, b := range l.blocks {
		if len(b) == 0 {
			return fmt.Errorf("block %d is empty", i)
		}
		if len(b) > l.blockSize {
			return fmt.Errorf("block %d overflow: %d > %d", i, len(b), l.blockSize)
		}
		if i > 0 && len(b) < l.blockSize/2 {
			return fmt.Errorf("block %d underflow: %d < %d", i, len(b), l.blockSize/2)
		}
		for j := 1; j < len(b); j++ {
			if l.cmp(b[j-1], b[j]) > 0 {
				return fmt.Errorf("block %d not sorted at %d", i, j)
			}
		}
		if i > 0 && l.cmp(l.blocks[i-1].Last(), b[0]) > 0 {
			return fmt.Errorf("block %d starts before the end of block %d", i, i-1)
		}
		total += len(b)
	}
	if total != l.length {
		return fmt.Errorf("length mismatch: %d blocks hold %d", l.length, total)
	}
	return nil
}

func requireBlocks[T any](t *testing.T, l *SortedList[T]) {
	t.Helper()
	if err := checkBlocks(l); err != nil {
		t.Fatal(err)
	}
}
