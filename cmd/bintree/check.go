package main

import (
	"cmp"
	"math/rand"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// check runs a random insert and remove workload, comparing the tree against
// a count of every value and verifying the invariants after every operation.
func check(logger *zap.Logger, c *checkCmd) error {
	if c.Range <= 0 {
		return errors.Errorf("range must be positive, got %d", c.Range)
	}
	r := rand.New(rand.NewSource(c.Seed))
	rebalance := !c.NoRebalance
	counts := make(map[int]int)
	var tree Trees.BinTree[int]
	id := func(v int) int { return v }
	n, removed := 0, 0
	for i := range c.Count {
		v := r.Intn(c.Range)
		if r.Intn(3) < 2 {
			Trees.InsertToKeyCmp(&tree, v, id, cmp.Compare[int], rebalance, false)
			counts[v]++
			n++
		} else {
			_, ok := Trees.RemoveSortedToKeyCmp(&tree, v, id, cmp.Compare[int], rebalance)
			if ok != (counts[v] > 0) {
				return errors.Errorf("step %d: removal of %d returned %v with %d copies", i, v, ok, counts[v])
			}
			if ok {
				counts[v]--
				n--
				removed++
			}
		}
		if err := verify(&tree, n, rebalance); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		if ce := logger.Check(zap.DebugLevel, "step"); ce != nil {
			ce.Write(zap.Int("step", i), zap.Int("value", v), zap.Int("size", n), zap.Int("height", tree.Height()))
		}
	}
	logger.Info("check passed",
		zap.Int("operations", c.Count),
		zap.Int64("seed", c.Seed),
		zap.Int("removed", removed),
		zap.Int("size", n),
		zap.Int("height", tree.Height()),
		zap.Bool("rebalance", rebalance),
	)
	return nil
}

func verify(tree *Trees.BinTree[int], n int, rebalance bool) error {
	if !tree.IsSortedFunc(cmp.Compare[int]) {
		return errors.New("values out of order")
	}
	if !tree.HeightsConsistent() {
		return errors.New("stored heights are wrong")
	}
	if rebalance && !tree.IsBalanced() {
		return errors.New("tree out of balance")
	}
	if l := tree.Len(); l != n {
		return errors.Errorf("tree has %d values, want %d", l, n)
	}
	return nil
}
