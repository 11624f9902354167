// Package fanout implements the bounded-concurrency server query driver
// (C5): every endpoint is queried independently, bounded by a semaphore,
// sharing only the process-wide immutable Huffman codec.
//
// Grounded on golang.org/x/sync/semaphore as wired in the wider pack's
// worker-pool usage; the teacher itself favors small explicit
// goroutine+channel pools (e.g. internal/db's indexer), which this
// generalizes to a weighted semaphore since max_concurrent_queries is a
// single numeric bound rather than a pipeline stage count.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/zandronum/serverquery/lib/protocol"
)

// Querier is the single-server collaborator a Driver fans out to.
// lib/query.Client satisfies this.
type Querier interface {
	QueryServer(ctx context.Context, endpoint protocol.ServerEndpoint) *protocol.ServerRecord
}

// Observer receives optional per-server completion events.
type Observer interface {
	OnServerQueried(rec *protocol.ServerRecord, success bool)
}

// Driver issues bounded-concurrency queries across a set of endpoints.
type Driver struct {
	querier       Querier
	maxConcurrent int64
	observer      Observer
}

// New constructs a Driver. maxConcurrent <= 0 falls back to 50, the
// documented default (spec §6).
func New(querier Querier, maxConcurrent uint32, observer Observer) *Driver {
	n := int64(maxConcurrent)
	if n <= 0 {
		n = 50
	}
	return &Driver{querier: querier, maxConcurrent: n, observer: observer}
}

// QueryServers runs one query per endpoint, at most maxConcurrent at a
// time, and waits for every one to complete (spec §4.4). Cancelling ctx
// cancels every in-flight query; already-completed records are still
// returned. No ordering is promised between results and endpoints
// (spec §5).
func (d *Driver) QueryServers(ctx context.Context, endpoints []protocol.ServerEndpoint) []*protocol.ServerRecord {
	sem := semaphore.NewWeighted(d.maxConcurrent)
	results := make([]*protocol.ServerRecord, len(endpoints))

	var wg sync.WaitGroup
	for i, ep := range endpoints {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context already done: synthesize a cancelled record rather
			// than dropping the endpoint from the result set.
			rec := protocol.NewServerRecord(ep)
			rec.ErrorMessage = "cancelled"
			results[i] = rec
			fanoutQueriesTotal.WithLabelValues("cancelled").Inc()
			continue
		}

		wg.Add(1)
		go func(i int, ep protocol.ServerEndpoint) {
			defer wg.Done()
			defer sem.Release(1)

			fanoutInFlight.Inc()
			rec := d.querier.QueryServer(ctx, ep)
			fanoutInFlight.Dec()

			success := rec.IsOnline && rec.ErrorMessage == ""
			if success {
				fanoutQueriesTotal.WithLabelValues("success").Inc()
			} else {
				fanoutQueriesTotal.WithLabelValues("failure").Inc()
			}

			results[i] = rec
			if d.observer != nil {
				d.observer.OnServerQueried(rec, success)
			}
		}(i, ep)
	}

	wg.Wait()
	return results
}
