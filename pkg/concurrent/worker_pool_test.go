package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolProcessesEveryJob(t *testing.T) {
	pool := NewWorkerPool[int, int](4, 100)
	pool.Start(func(job int) int { return job * job })

	for i := 0; i < 100; i++ {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	results := make([]int, 0, 100)
	for r := range pool.CollectResults() {
		results = append(results, r)
	}
	require.Len(t, results, 100)

	sort.Ints(results)
	for i := 0; i < 100; i++ {
		assert.Equal(t, i*i, results[i])
	}
}

func TestWorkerPoolNoJobs(t *testing.T) {
	pool := NewWorkerPool[int, int](2, 1)
	pool.Start(func(job int) int { return job })
	pool.Close()
	pool.Wait()

	count := 0
	for range pool.CollectResults() {
		count++
	}
	assert.Equal(t, 0, count)
}
