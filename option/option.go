package option

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

const (
	MinBlockSize = 1

	// DefaultBlockSize fits lists up to about a million elements.
	DefaultBlockSize = 1000
)

var (
	ErrInvalidBlockSize = errors.New("option: invalid block size")
)

// Option for SortedList.
type Option struct {
	// BlockSize is the max length of each block, fixed for the list lifetime.
	BlockSize int

	// Logger receives block split/merge events at debug level.
	// nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOption
var DefaultOption = &Option{
	BlockSize: DefaultBlockSize,
}

// Validate
func (o *Option) Validate() error {
	if o.BlockSize < MinBlockSize {
		return fmt.Errorf("%w: %d, must be at least %d", ErrInvalidBlockSize, o.BlockSize, MinBlockSize)
	}
	return nil
}

// GetLogger
func (o *Option) GetLogger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// BlockSizeFor return a block size of ceil(sqrt(n)) for n expected elements.
func BlockSizeFor(n int) int {
	size := int(math.Ceil(math.Sqrt(float64(n))))
	return max(size, MinBlockSize)
}
