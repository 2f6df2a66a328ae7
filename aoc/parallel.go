package aoc

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f on every element of in, running at most workers calls at
// once, and returns the results in input order. workers <= 0 means
// GOMAXPROCS.
func Parallel[I, O any](in []I, workers int, f func(I) O) []O {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]O, len(in))
	if workers == 1 {
		for i, v := range in {
			out[i] = f(v)
		}
		return out
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	g.Wait() // f cannot fail
	return out
}
