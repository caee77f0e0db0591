package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/treasure-medians/internal/config"
	"github.com/pfrederiksen/treasure-medians/internal/logger"
	"github.com/pfrederiksen/treasure-medians/internal/reward"
	"github.com/pfrederiksen/treasure-medians/internal/scraper"
	"github.com/pfrederiksen/treasure-medians/internal/workbook"
)

// SheetSummary describes one per-table sheet of the workbook
type SheetSummary struct {
	Category  string  `json:"category"`
	Title     string  `json:"title"`
	SheetName string  `json:"sheet_name"`
	Entries   int     `json:"entries"`
	Total     float64 `json:"total"`
}

// Result is what a successful run produced
type Result struct {
	OutputPath string         `json:"output_path"`
	Multiplier float64        `json:"multiplier"`
	Sheets     []SheetSummary `json:"sheets"`
	Rows       []reward.Row   `json:"rows"`
}

// GrandTotal is the value the "All Medians" total formula evaluates to
func (r *Result) GrandTotal() float64 {
	return reward.SumTotals(r.Rows)
}

// Pipeline exports the configured categories to a workbook
type Pipeline struct {
	cfg      config.Config
	fetcher  scraper.Fetcher
	locator  scraper.TableLocator
	logger   *logger.Logger
	metrics  *logger.Metrics
	progress io.Writer
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger sets the structured logger. Defaults to logger.Default().
func WithLogger(l *logger.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithMetrics sets the metrics tracker. Defaults to logger.DefaultMetrics().
func WithMetrics(m *logger.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithProgress sets where human-readable progress lines are printed.
// Progress is discarded by default.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) {
		p.progress = w
	}
}

// New creates a pipeline for cfg that loads pages through fetcher.
// cfg is validated here so Run never sees an invalid configuration.
func New(cfg config.Config, fetcher scraper.Fetcher, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	locator, err := scraper.LocatorByName(cfg.Locator)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:      cfg,
		fetcher:  fetcher,
		locator:  locator,
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Default()
	}
	if p.metrics == nil {
		p.metrics = logger.DefaultMetrics()
	}

	return p, nil
}

// Run processes every category and saves the workbook.
// The first failing category aborts the run and nothing is written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	fmt.Fprintln(p.progress, "⛵ Fetching pages…")

	wb, err := workbook.New(p.cfg.Multiplier)
	if err != nil {
		return nil, fmt.Errorf("creating workbook: %w", err)
	}
	defer wb.Close()

	result := &Result{
		Multiplier: p.cfg.Multiplier,
		Sheets:     make([]SheetSummary, 0),
		Rows:       make([]reward.Row, 0),
	}

	for _, cat := range p.cfg.Categories {
		if err := p.runCategory(ctx, wb, cat, result); err != nil {
			p.logger.Error("Category failed", logger.Fields{"category": cat.Name, "url": cat.URL}, err)
			return nil, fmt.Errorf("category %s: %w", cat.Name, err)
		}
	}

	path, err := wb.Save(p.cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("saving workbook: %w", err)
	}
	result.OutputPath = path

	sheets, rows := wb.Sheets(), wb.MasterRows()
	p.metrics.SetGauge(logger.GaugeWorkbookSheets, float64(len(sheets)))
	p.metrics.SetGauge(logger.GaugeWorkbookRows, float64(rows))
	p.logger.Info("Saved workbook", logger.Fields{
		"path":   path,
		"sheets": sheets,
		"rows":   rows,
	})

	return result, nil
}

// runCategory fetches one category page and writes its tables
func (p *Pipeline) runCategory(ctx context.Context, wb *workbook.Workbook, cat config.Category, result *Result) error {
	fmt.Fprintf(p.progress, "Fetching %s from %s ...\n", cat.Name, cat.URL)

	start := time.Now()
	doc, err := p.fetcher.Fetch(ctx, cat.URL)
	p.metrics.RecordTiming(logger.MetricFetch, time.Since(start))
	if err != nil {
		return fmt.Errorf("fetching %s: %w", cat.URL, err)
	}
	p.metrics.IncrCounter(logger.MetricPagesFetched)

	candidates, err := scraper.Discover(doc, cat.Name, cat.Strategy, p.locator)
	if err != nil {
		return err
	}
	p.metrics.AddCounter(logger.MetricTablesDiscovered, int64(len(candidates)))
	if len(candidates) == 0 {
		p.logger.Warn("No reward tables found", logger.Fields{"category": cat.Name, "url": cat.URL})
	}
	p.logger.Debug("Discovered tables", logger.Fields{
		"category": cat.Name,
		"strategy": string(cat.Strategy),
		"tables":   len(candidates),
	})

	for _, c := range candidates {
		entries, stats := scraper.ExtractRowsWithStats(c.Table, scraper.NameColumn, scraper.MedianColumn)
		p.metrics.AddCounter(logger.MetricRowsExtracted, int64(len(entries)))
		p.metrics.AddCounter(logger.MetricRowsDropped, int64(stats.Dropped()))
		if stats.Dropped() > 0 {
			p.logger.Debug("Dropped rows", logger.Fields{
				"title":     c.Title,
				"malformed": stats.Malformed,
				"unparsed":  stats.Unparsed,
			})
		}

		written, sheetName, err := wb.WriteSheet(c.Title, entries)
		if err != nil {
			return fmt.Errorf("writing sheet %q: %w", c.Title, err)
		}
		if written == nil {
			p.metrics.IncrCounter(logger.MetricTablesEmpty)
			p.logger.Debug("Table has no rewards", logger.Fields{"title": c.Title})
			continue
		}
		p.metrics.IncrCounter(logger.MetricSheetsWritten)

		rows, err := wb.AppendMaster(cat.Name, written)
		if err != nil {
			return fmt.Errorf("adding %q to %s: %w", c.Title, workbook.MasterSheetName, err)
		}

		result.Rows = append(result.Rows, rows...)
		result.Sheets = append(result.Sheets, SheetSummary{
			Category:  cat.Name,
			Title:     c.Title,
			SheetName: sheetName,
			Entries:   len(rows),
			Total:     reward.SumTotals(rows),
		})
	}

	return nil
}
