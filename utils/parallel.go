package utils

import (
	"context"
	"math"
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// GroupWorkFunc runs once per worker group over the half-open index range
// [from, to) and returns an error for the whole group.
type GroupWorkFunc func(groupNum, from, to int) error

// GroupWorkParallel splits totalSize work items across worker goroutines and
// runs groupWork for each contiguous span. Errors from all groups are merged.
// The work itself is expected to honor ctx; spans are fixed up front.
func GroupWorkParallel(ctx context.Context, totalSize int, groupWork GroupWorkFunc) error {
	numGroups := ParallelFactor
	if totalSize < numGroups {
		numGroups = totalSize
	}
	if numGroups <= 0 {
		return nil
	}
	groupSize := int(math.Floor(float64(totalSize) / float64(numGroups)))
	extra := totalSize % numGroups

	errs := make([]error, numGroups)
	var wait sync.WaitGroup
	wait.Add(numGroups)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		groupNumCopy := groupNum
		utils.PanicCapturingGo(func() {
			defer wait.Done()
			groupNum := groupNumCopy

			from := groupSize * groupNum
			to := groupSize * (groupNum + 1)
			if groupNum == numGroups-1 {
				to += extra
			}
			if ctx.Err() != nil {
				errs[groupNum] = ctx.Err()
				return
			}
			errs[groupNum] = groupWork(groupNum, from, to)
		})
	}
	wait.Wait()
	return multierr.Combine(errs...)
}
