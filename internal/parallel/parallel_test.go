package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8, 100} {
		hits := make([]int32, 37)
		For(len(hits), Workers(workers), func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		for i, h := range hits {
			assert.Equal(t, int32(1), h, "workers %d index %d", workers, i)
		}
	}
}

func TestForEmpty(t *testing.T) {
	called := false
	For(0, 4, func(int) { called = true })
	assert.False(t, called)
}

func TestMap(t *testing.T) {
	squares := Map(10, 4, func(i int) int { return i * i })
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, squares)
	assert.Empty(t, Map(-1, 4, func(i int) int { return i }))
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, NumWorkers(), Workers(0))
	assert.Equal(t, 5, Workers(5))
}
