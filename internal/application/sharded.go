package application

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/bnema/load-velocity-cli/internal/domain"
	"github.com/bnema/load-velocity-cli/internal/ports"
)

// RunSharded evaluates attempts across workers partitioned by customer id.
// Ordering within a customer is load-bearing, so every attempt for a given
// customer lands on the same shard and is evaluated in input order there;
// ordering across customers is not, so shards run independently. Decisions
// are then written in original input order, making the output byte-identical
// to a sequential run.
func RunSharded(attempts []domain.LoadAttempt, sink ports.DecisionSink, workers int) (Summary, error) {
	if workers < 1 {
		workers = 1
	}

	// One slot per attempt; nil marks a suppressed duplicate.
	decisions := make([]*domain.Decision, len(attempts))
	shards := make([][]int, workers)
	for i, attempt := range attempts {
		shard := shardFor(attempt.CustomerID, workers)
		shards[shard] = append(shards[shard], i)
	}

	var wg sync.WaitGroup
	for _, indexes := range shards {
		if len(indexes) == 0 {
			continue
		}

		wg.Add(1)
		go func(indexes []int) {
			defer wg.Done()

			evaluator := NewEvaluator()
			for _, i := range indexes {
				if decision, ok := evaluator.Evaluate(attempts[i]); ok {
					decisions[i] = &decision
				}
			}
		}(indexes)
	}
	wg.Wait()

	summary := newSummary()
	for i, attempt := range attempts {
		decision := decisions[i]
		if decision == nil {
			summary.record(attempt.CustomerID, domain.Decision{}, false)
			continue
		}

		summary.record(attempt.CustomerID, *decision, true)
		if err := sink.Write(*decision); err != nil {
			return summary, fmt.Errorf("write decision for %s/%s: %w", attempt.CustomerID, attempt.ID, err)
		}
	}

	return summary, nil
}

func shardFor(customerID domain.CustomerID, workers int) int {
	h := fnv.New32a()
	h.Write([]byte(customerID))
	return int(h.Sum32() % uint32(workers))
}
