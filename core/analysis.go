package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/JesusPetro/mantra/core/powerlaw"
	"github.com/JesusPetro/mantra/core/stats"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/graphio"
	"github.com/JesusPetro/mantra/schema"
)

// graphFunc resolves one series identifier to its graph.
type graphFunc func(id int64) (*schema.Graph, error)

// seriesOutcome carries the per-identifier result through the worker pool.
// Exactly one of result/failure is set.
type seriesOutcome struct {
	idx     int
	result  *schema.AlphaResult
	failure *schema.AlphaFailure
}

// analyzeSeries runs graph → histogram → fit for a single identifier.
func analyzeSeries(name string, id int64, window schema.FitWindow, graphFor graphFunc) (schema.AlphaResult, error) {
	g, err := graphFor(id)
	if err != nil {
		return schema.AlphaResult{}, err
	}

	dist, err := stats.Distribution(g)
	if err != nil {
		return schema.AlphaResult{}, err
	}

	fit, err := powerlaw.Fit(dist, window)
	if err != nil {
		return schema.AlphaResult{}, err
	}

	return schema.AlphaResult{
		Name:  name,
		ID:    id,
		Alpha: fit.Alpha,
		Fit:   fit,
	}, nil
}

// classifyFailure buckets a pipeline error into the reporting taxonomy.
// Unmatched errors come from the graph source layer (unreadable or malformed
// files) and land in the source bucket.
func classifyFailure(err error) schema.FailureKind {
	switch {
	case errors.Is(err, stats.ErrEmptyGraph):
		return schema.FailureEmptyGraph
	case errors.Is(err, powerlaw.ErrInvalidInput):
		return schema.FailureInvalidInput
	case errors.Is(err, powerlaw.ErrInsufficientFitData):
		return schema.FailureInsufficientData
	case errors.Is(err, graphio.ErrNotFound):
		return schema.FailureSourceNotFound
	default:
		return schema.FailureSourceNotFound
	}
}

// runAlphaPipeline processes all identifiers in parallel using a worker pool.
// Each identifier yields exactly one result or one recorded failure; a bad
// identifier never aborts the batch. Cancelling the context stops scheduling
// new identifiers while already-scheduled ones finish, so partially-built
// results stay consistent. Successes keep the input identifier order.
func runAlphaPipeline(ctx context.Context, name string, ids []int64, window schema.FitWindow, workers int, graphFor graphFunc) *schema.RunOutput {
	jobCh := make(chan seriesOutcome, len(ids))
	idxCh := make(chan int, len(ids))

	done := make(chan struct{})
	for range workers {
		go func() {
			defer func() { done <- struct{}{} }()
			for idx := range idxCh {
				id := ids[idx]
				result, err := analyzeSeries(name, id, window, graphFor)
				if err != nil {
					jobCh <- seriesOutcome{idx: idx, failure: &schema.AlphaFailure{
						ID:   id,
						Kind: classifyFailure(err),
						Err:  err,
					}}
					continue
				}
				jobCh <- seriesOutcome{idx: idx, result: &result}
			}
		}()
	}

	// Feed identifiers, honoring run-level cancellation between sends.
feed:
	for i := range ids {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		idxCh <- i
	}
	close(idxCh)

	for range workers {
		<-done
	}
	close(jobCh)

	// Re-establish input order: the pool delivers outcomes as they finish.
	outcomes := make([]*seriesOutcome, len(ids))
	for o := range jobCh {
		outcomes[o.idx] = &o
	}

	output := &schema.RunOutput{Type: name}
	for _, oc := range outcomes {
		if oc == nil {
			continue // never scheduled due to cancellation
		}
		if oc.failure != nil {
			output.Failures = append(output.Failures, *oc.failure)
			continue
		}
		output.Results = append(output.Results, *oc.result)
	}
	return output
}

// builderGraphFunc returns a graphFunc that builds visibility graphs in
// memory from the series table, optionally persisting each edge list.
func builderGraphFunc(table *contract.SeriesTable, variant schema.GraphVariant, edgeDir string, saveEdges bool) graphFunc {
	return func(id int64) (*schema.Graph, error) {
		values := table.Samples(id)
		if values == nil {
			return nil, fmt.Errorf("%w: no samples for id %d", graphio.ErrNotFound, id)
		}
		g := buildVisibilityGraph(values, variant)
		if saveEdges {
			if err := graphio.WriteEdgeList(g, graphio.EdgeListPath(edgeDir, id)); err != nil {
				return nil, err
			}
		}
		return g, nil
	}
}

// readerGraphFunc returns a graphFunc that reads persisted edge lists.
func readerGraphFunc(edgeDir string) graphFunc {
	src := &graphio.DirSource{EdgeDir: edgeDir}
	return src.Graph
}
