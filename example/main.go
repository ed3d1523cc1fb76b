package main

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/xgzlucario/sortedlist"
	"github.com/xgzlucario/sortedlist/option"
)

var errNegativeNum = errors.New("number of elements must not be negative")

// checkNum
func checkNum(num int) error {
	if num < 0 {
		return fmt.Errorf("%w: %d", errNegativeNum, num)
	}
	return nil
}

func main() {
	var args struct {
		Num       int  `arg:"-n" help:"number of elements" default:"1000000"`
		BlockSize int  `arg:"-b" help:"block size, 0 means sqrt(num)"`
		Debug     bool `help:"log block splits and merges"`
	}
	arg.MustParse(&args)

	level := slog.LevelInfo
	if args.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := checkNum(args.Num); err != nil {
		logger.Error("parse args", "error", err)
		os.Exit(1)
	}

	blockSize := args.BlockSize
	if blockSize == 0 {
		blockSize = option.BlockSizeFor(args.Num)
	}

	l, err := sortedlist.NewWithOption(&option.Option{
		BlockSize: blockSize,
		Logger:    logger,
	}, cmp.Compare[int])
	if err != nil {
		logger.Error("create list", "error", err)
		os.Exit(1)
	}

	// insert.
	start := time.Now()
	for _, v := range rand.Perm(args.Num) {
		l.Insert(v)
	}
	logger.Info("insert", "num", args.Num, "blockSize", blockSize, "cost", time.Since(start))

	// remove half.
	start = time.Now()
	for _, v := range rand.Perm(args.Num)[:args.Num/2] {
		l.Remove(v)
	}
	logger.Info("remove", "num", args.Num/2, "cost", time.Since(start))

	if !slices.IsSorted(l.Slice()) {
		logger.Error("list is not sorted")
		os.Exit(1)
	}

	stats := l.Stats()
	logger.Info("stats",
		"len", stats.Len,
		"blocks", stats.Blocks,
		"splits", stats.Splits,
		"merges", stats.Merges,
		"redistributions", stats.Redistributions)
}
