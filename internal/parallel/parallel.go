// Package parallel splits index ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Workers resolves a configured worker count, where n <= 0 means
// NumWorkers().
func Workers(n int) int {
	if n <= 0 {
		return NumWorkers()
	}
	return n
}

// chunks calls fn(start, end) for n contiguous chunks covering [0, total).
// Chunks run concurrently unless n <= 1.
func chunks(total, n int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	if n <= 1 || total == 1 {
		fn(0, total)
		return
	}

	size := (total + n - 1) / n
	var wg sync.WaitGroup
	for start := 0; start < total; start += size {
		end := min(start+size, total)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For calls fn(i) for every i in [0, total) using n workers. fn must only
// write state owned by index i.
func For(total, n int, fn func(i int)) {
	chunks(total, n, func(s, e int) {
		for i := s; i < e; i++ {
			fn(i)
		}
	})
}

// Map returns fn(i) for every i in [0, total), computed by n workers.
func Map[T any](total, n int, fn func(i int) T) []T {
	results := make([]T, max(total, 0))
	For(total, n, func(i int) {
		results[i] = fn(i)
	})
	return results
}
