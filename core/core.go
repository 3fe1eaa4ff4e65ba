// Package core has core logic for building visibility graphs and fitting
// power-law exponents over their degree distributions.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JesusPetro/mantra/core/visibility"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/graphio"
	"github.com/JesusPetro/mantra/internal/outwriter"
	"github.com/JesusPetro/mantra/internal/render"
	"github.com/JesusPetro/mantra/internal/series"
	"github.com/JesusPetro/mantra/schema"
)

// ExecuteAlphaRun runs the full pipeline for one transient type: load the
// series CSV, build a visibility graph per identifier, fit alpha per graph
// and print the aggregated results. It serves as the main entry point for
// the 'alpha' mode.
func ExecuteAlphaRun(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	paths := contract.PathsForType(cfg.DataDir, cfg.Type)

	table, err := loadSeriesTable(ctx, cfg, paths)
	if err != nil {
		return err
	}
	if cfg.SaveEdges || cfg.Plot {
		if err := paths.EnsureDirs(); err != nil {
			return err
		}
	}

	graphFor := builderGraphFunc(table, cfg.Variant, paths.EdgeDir, cfg.SaveEdges)
	output, err := runTrackedPipeline(ctx, cfg, store, table.IDs, graphFor)
	if err != nil {
		return err
	}

	if cfg.Plot {
		renderFitPlots(cfg, output, paths.PlotDir)
	}

	duration := time.Since(start)
	return outwriter.WriteAlphaResults(output, cfg, duration)
}

// ExecuteEdgeBuild builds a visibility graph for every identifier in the
// series CSV and persists each one as an edge list, without fitting.
func ExecuteEdgeBuild(ctx context.Context, cfg *contract.Config) error {
	paths := contract.PathsForType(cfg.DataDir, cfg.Type)

	table, err := loadSeriesTable(ctx, cfg, paths)
	if err != nil {
		return err
	}
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	written := 0
	for _, id := range table.IDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		g := buildVisibilityGraph(table.Values[id], cfg.Variant)
		if err := graphio.WriteEdgeList(g, graphio.EdgeListPath(paths.EdgeDir, id)); err != nil {
			contract.LogWarn(fmt.Sprintf("Failed to write edge list for id %d", id), err)
			continue
		}
		written++
	}

	fmt.Printf("Wrote %d of %d edge lists to %s\n", written, len(table.IDs), paths.EdgeDir)
	return nil
}

// ExecuteFitRun fits alpha from previously persisted edge lists instead of
// rebuilding graphs, covering the original read-edgelist workflow. Missing
// edge lists are recorded as failures and skipped.
func ExecuteFitRun(ctx context.Context, cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	paths := contract.PathsForType(cfg.DataDir, cfg.Type)

	table, err := loadSeriesTable(ctx, cfg, paths)
	if err != nil {
		return err
	}

	output, err := runTrackedPipeline(ctx, cfg, store, table.IDs, readerGraphFunc(paths.EdgeDir))
	if err != nil {
		return err
	}

	if cfg.Plot {
		if err := paths.EnsureDirs(); err != nil {
			return err
		}
		renderFitPlots(cfg, output, paths.PlotDir)
	}

	duration := time.Since(start)
	return outwriter.WriteAlphaResults(output, cfg, duration)
}

// loadSeriesTable reads the series CSV for the configured type.
func loadSeriesTable(ctx context.Context, cfg *contract.Config, paths contract.Paths) (*contract.SeriesTable, error) {
	source := series.NewCSVSource(paths.CSVPath, cfg.IDColumn, cfg.MagColumn)
	table, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(table.IDs) == 0 {
		return nil, errors.New("no series found")
	}
	return table, nil
}

// runTrackedPipeline wraps the worker-pool pipeline with run tracking when a
// store is configured. Tracking failures degrade to warnings; they never
// abort the analysis itself.
func runTrackedPipeline(ctx context.Context, cfg *contract.Config, store contract.RunStore, ids []int64, graphFor graphFunc) (*schema.RunOutput, error) {
	var runID int64
	if store != nil {
		configParams := map[string]any{
			"type":    cfg.Type,
			"variant": string(cfg.Variant),
			"li_fit":  cfg.Window.Lower,
			"ls_fit":  cfg.Window.Upper,
			"workers": cfg.Workers,
		}
		var err error
		runID, err = store.BeginRun(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	output := runAlphaPipeline(ctx, cfg.Type, ids, cfg.Window, cfg.Workers, graphFor)

	for _, f := range output.Failures {
		contract.LogWarn(fmt.Sprintf("Skipped id %d (%s)", f.ID, f.Kind), f.Err)
	}

	if store != nil && runID > 0 {
		now := time.Now()
		for _, r := range output.Results {
			record := schema.AlphaRowRecord{
				RunID:     runID,
				Name:      r.Name,
				SeriesID:  r.ID,
				Alpha:     r.Alpha,
				Slope:     r.Fit.Slope,
				Intercept: r.Fit.Intercept,
				PointsFit: int32(r.Fit.PointsFit),
				FitTime:   now,
			}
			if err := store.RecordAlpha(runID, record); err != nil {
				contract.LogWarn(fmt.Sprintf("Run tracking failed for id %d", r.ID), err)
			}
		}
		if err := store.EndRun(runID, time.Now(), len(output.Results)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return output, nil
}

// renderFitPlots writes one log-log fit plot per fitted series.
func renderFitPlots(cfg *contract.Config, output *schema.RunOutput, plotDir string) {
	renderer := render.NewFitPlot()
	for _, r := range output.Results {
		outPath := render.PlotPath(plotDir, r.ID)
		if err := renderer.RenderFit(r, cfg.Window, outPath); err != nil {
			contract.LogWarn(fmt.Sprintf("Failed to render plot for id %d", r.ID), err)
		}
	}
}

// buildVisibilityGraph constructs the graph for one sample vector.
func buildVisibilityGraph(values []float64, variant schema.GraphVariant) *schema.Graph {
	return visibility.Build(values, variant)
}
