/* SPDX-License-Identifier: AGPL-3.0-or-later
 *
 * Cladealign - A viral genome analysis library for Go.
 * Copyright (C) 2025 Cladealign Contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as published
 * by the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package pipeline

import (
	"container/heap"
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"
)

// BatchOptions controls how RunBatch fans queries out across workers and
// emits results (spec §5).
type BatchOptions struct {
	// Workers bounds how many queries are processed concurrently. Zero
	// means "decide for the caller" and is treated as 1, since the
	// pipeline has no safe default derived from runtime.NumCPU without a
	// caller opting in.
	Workers int

	// Ordered requests that results be delivered to Results in increasing
	// Index order, buffering completed-but-out-of-order results in a
	// min-heap until their turn comes. When false, results are delivered
	// as soon as each worker finishes, interleaved by completion time; the
	// Index field is always set so a caller can still recover order.
	Ordered bool

	// ShowProgress starts a cheggaaa/pb progress bar over the batch, one
	// increment per completed query (including failed ones).
	ShowProgress bool

	Logger *slog.Logger
}

// RunBatch processes every query in queries against setup using a bounded
// worker pool, per spec §5: "one query per worker, to completion; a
// cooperative shared cancellation flag lets the caller abort remaining
// work; there is no mid-query suspension." Results is closed once every
// query has been processed or the context is cancelled.
//
// A per-query failure never aborts the batch (spec §7): it is recorded as
// an *errs.QueryError on the returned Result's Errors field. Only a
// context cancellation stops queries that have not yet started.
func RunBatch(ctx context.Context, setup *BatchSetup, queries []Query, opts BatchOptions) <-chan *Result {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	out := make(chan *Result, workers)

	var bar *pb.ProgressBar
	if opts.ShowProgress {
		bar = pb.StartNew(len(queries))
	}

	go func() {
		defer close(out)
		if bar != nil {
			defer bar.Finish()
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)

		results := make(chan *Result)
		done := make(chan struct{})

		if opts.Ordered {
			go orderedEmit(queries, results, out, done)
		} else {
			go passthroughEmit(results, out, done)
		}

	queries:
		for _, q := range queries {
			q := q
			select {
			case <-gctx.Done():
				break queries
			default:
			}
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				result, err := Process(setup, q)
				if err != nil {
					logger.Warn("query failed", "index", q.Index, "name", q.Name, "error", err)
					result = &Result{Index: q.Index, SeqName: q.Name, Errors: []error{err}}
				}

				if bar != nil {
					bar.Increment()
				}

				select {
				case results <- result:
				case <-gctx.Done():
					return gctx.Err()
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			logger.Error("batch aborted", "error", err)
		}
		close(results)
		<-done
	}()

	return out
}

// passthroughEmit forwards results to out as soon as each worker finishes,
// the unordered/interleaved-by-completion mode of spec §5.
func passthroughEmit(results <-chan *Result, out chan<- *Result, done chan<- struct{}) {
	defer close(done)
	for r := range results {
		out <- r
	}
}

// orderedEmit buffers completed-but-out-of-order results in a min-heap
// keyed by Index and releases them to out only once every lower index has
// already been released, giving callers input-order delivery without
// forcing workers to finish in that order (spec §5).
func orderedEmit(queries []Query, results <-chan *Result, out chan<- *Result, done chan<- struct{}) {
	defer close(done)

	pending := &resultHeap{}
	heap.Init(pending)
	next := 0
	if len(queries) > 0 {
		next = minIndex(queries)
	}

	for r := range results {
		heap.Push(pending, r)
		for pending.Len() > 0 && (*pending)[0].Index == next {
			out <- heap.Pop(pending).(*Result)
			next++
		}
	}
	// Any results left in the heap belong to indices that never arrived in
	// strict sequence (e.g. a gap from a query index that was skipped
	// upstream); flush them in index order rather than dropping them.
	for pending.Len() > 0 {
		out <- heap.Pop(pending).(*Result)
	}
}

func minIndex(queries []Query) int {
	m := queries[0].Index
	for _, q := range queries[1:] {
		if q.Index < m {
			m = q.Index
		}
	}
	return m
}

// resultHeap is a container/heap.Interface over *Result ordered by Index.
type resultHeap []*Result

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].Index < h[j].Index }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(*Result)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
