package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// minDetailWidth is the narrowest terminal that still fits the raw
// regression columns.
const minDetailWidth = 70

// alphaJSONRecord is the JSON view of one fitted series.
type alphaJSONRecord struct {
	Name      string  `json:"name"`
	ID        int64   `json:"id"`
	Alpha     float64 `json:"alpha"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	PointsFit int     `json:"points_fit"`
	Label     string  `json:"label"`
}

// alphaJSONFailure is the JSON view of one skipped series.
type alphaJSONFailure struct {
	ID     int64  `json:"id"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// alphaJSONOutput is the top-level JSON document for one run.
type alphaJSONOutput struct {
	Type     string             `json:"type"`
	Results  []alphaJSONRecord  `json:"results"`
	Failures []alphaJSONFailure `json:"failures"`
}

// writeJSONResultsForAlpha marshals the run output to JSON and writes it.
func writeJSONResultsForAlpha(w io.Writer, output *schema.RunOutput) error {
	doc := alphaJSONOutput{
		Type:     output.Type,
		Results:  make([]alphaJSONRecord, 0, len(output.Results)),
		Failures: make([]alphaJSONFailure, 0, len(output.Failures)),
	}
	for _, r := range output.Results {
		doc.Results = append(doc.Results, alphaJSONRecord{
			Name:      r.Name,
			ID:        r.ID,
			Alpha:     r.Alpha,
			Slope:     r.Fit.Slope,
			Intercept: r.Fit.Intercept,
			PointsFit: r.Fit.PointsFit,
			Label:     contract.GetPlainLabel(r.Alpha),
		})
	}
	for _, f := range output.Failures {
		doc.Failures = append(doc.Failures, alphaJSONFailure{
			ID:     f.ID,
			Kind:   string(f.Kind),
			Reason: f.Err.Error(),
		})
	}
	return writeJSON(w, doc)
}

// writeCSVResultsForAlpha writes the run output to a CSV writer.
func writeCSVResultsForAlpha(w *csv.Writer, output *schema.RunOutput, fmtFloat func(float64) string) error {
	header := []string{
		"name",
		"id",
		"alpha",
		"slope",
		"intercept",
		"points_fit",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range output.Results {
		row := []string{
			r.Name,
			strconv.FormatInt(r.ID, 10),
			fmtFloat(r.Alpha),
			fmtFloat(r.Fit.Slope),
			fmtFloat(r.Fit.Intercept),
			strconv.Itoa(r.Fit.PointsFit),
			contract.GetPlainLabel(r.Alpha),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeAlphaTable generates and writes the human-readable table.
func writeAlphaTable(output *schema.RunOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// Narrow terminals drop the raw regression columns and keep the rank,
	// identifier, exponent and label.
	detail := getTerminalWidth(cfg) >= minDetailWidth

	headers := []string{"Rank", "ID", "Alpha"}
	if detail {
		headers = append(headers, "Slope", "Intercept", "Points")
	}
	headers = append(headers, "Label")
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, r := range output.Results {
		label := contract.GetPlainLabel(r.Alpha)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Alpha)
		}
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.ID, 10),
			fmtFloat(r.Alpha),
		}
		if detail {
			row = append(row, fmtFloat(r.Fit.Slope), fmtFloat(r.Fit.Intercept), strconv.Itoa(r.Fit.PointsFit))
		}
		data = append(data, append(row, label))
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	total := len(output.Results) + len(output.Failures)
	fmt.Fprintf(writer, "Fitted %d of %d series for %s in %s\n",
		len(output.Results), total, output.Type, duration.Round(time.Millisecond))
	if len(output.Failures) > 0 {
		fmt.Fprintf(writer, "Skipped %d series; see warnings above\n", len(output.Failures))
	}
	return nil
}
