package main

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var sideEff bool

// delQry builds a tree of all, removes rmv of them and queries the rest.
func delQry(all []int, rmv int) func(b *testing.B) {
	return func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			var tree Trees.BinTree[int]
			Trees.ExtendSortedUnique(&tree, all...)
			b.StartTimer()
			for _, v := range all[:rmv] {
				Trees.RemoveSorted(&tree, v)
			}
			for _, v := range all[rmv:] {
				sideEff = Trees.ContainsSorted(tree, v)
			}
		}
	}
}

// measure runs delQry once per step, removing a larger share each time, and
// logs the mean and standard deviation of the time per operation.
func measure(logger *zap.Logger, count int, steps uint) error {
	if count <= 0 || steps == 0 {
		return errors.Errorf("count and steps must be positive, got %d and %d", count, steps)
	}
	testing.Init()
	r := rand.New(rand.NewSource(0))
	all := make([]int, count)
	for i := range all {
		all[i] = r.Int()
	}
	cs := make([]float64, 0, steps)
	for i := range steps {
		rmv := int(uint(count) / steps * i)
		br := testing.Benchmark(delQry(all, rmv))
		if br.N == 0 {
			return errors.Errorf("benchmark of step %d didn't run", i)
		}
		op := time.Duration(br.NsPerOp())
		cs = append(cs, float64(op.Microseconds()))
		logger.Info("step", zap.Uint("step", i), zap.Int("removed", rmv), zap.Int("runs", br.N), zap.Duration("op", op))
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	logger.Info("done",
		zap.Float64("average_us", avg),
		zap.Float64("stddev_us", math.Sqrt(sum/float64(len(cs)))),
	)
	return nil
}
