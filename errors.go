package sortedlist

import (
	"errors"

	"github.com/xgzlucario/sortedlist/option"
)

var (
	ErrInvalidBlockSize = option.ErrInvalidBlockSize

	ErrNilComparator = errors.New("sortedlist: nil comparator")
)
