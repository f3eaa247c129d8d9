package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	fixtureerrors "txn-fixture-generator/internal/errors"
	"txn-fixture-generator/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxDaysAgo          = 180
	hoursInDay          = 24
	minDescriptionWords = 2
	maxDescriptionWords = 6
)

type transactionGenerator struct {
	rng     RandomSource
	text    TextSource
	now     func() time.Time
	logger  FixtureLoggerInterface
	metrics MetricsRecorderInterface
}

// GenerationResult summarizes a completed generation run
type GenerationResult struct {
	RunID       uuid.UUID
	Path        string
	RowsWritten int
	StartedAt   time.Time
	CompletedAt time.Time
}

// ConfirmationMessage is the human-readable status line for a finished run
func (r *GenerationResult) ConfirmationMessage() string {
	return fmt.Sprintf("%d fake transactions written to %s", r.RowsWritten, r.Path)
}

// GeneratorOption configures optional generator dependencies
type GeneratorOption func(*transactionGenerator)

// WithClock overrides the time source used for transaction dates
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *transactionGenerator) {
		g.now = now
	}
}

// WithFixtureLogger sets the structured logger for run events
func WithFixtureLogger(logger FixtureLoggerInterface) GeneratorOption {
	return func(g *transactionGenerator) {
		g.logger = logger
	}
}

// WithMetricsRecorder sets the metrics recorder
func WithMetricsRecorder(metrics MetricsRecorderInterface) GeneratorOption {
	return func(g *transactionGenerator) {
		g.metrics = metrics
	}
}

// NewTransactionGenerator creates a new fixture generator drawing values
// from rng and descriptions from text
func NewTransactionGenerator(rng RandomSource, text TextSource, opts ...GeneratorOption) FixtureGeneratorInterface {
	g := &transactionGenerator{
		rng:  rng,
		text: text,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = NewFixtureLogger(nil)
	}
	if g.metrics == nil {
		g.metrics = NewPrometheusMetrics(nil)
	}

	return g
}

// GenerateAmount draws a signed amount uniformly from [-500, 500], rounded to cents
func (g *transactionGenerator) GenerateAmount() decimal.Decimal {
	minValue := models.MinTransactionAmount.InexactFloat64()
	maxValue := models.MaxTransactionAmount.InexactFloat64()
	return decimal.NewFromFloat(g.rng.Float64Range(minValue, maxValue)).Round(models.AmountPlaces)
}

// SelectCategoryID selects a category id uniformly at random
func (g *transactionGenerator) SelectCategoryID() int {
	ids := models.AllCategoryIDs()
	return ids[g.rng.IntRange(0, len(ids)-1)]
}

// GenerateTransactionDate returns now minus 0..180 whole days, at second precision
func (g *transactionGenerator) GenerateTransactionDate(now time.Time) time.Time {
	daysAgo := g.rng.IntRange(0, maxDaysAgo)
	return now.Add(-time.Duration(daysAgo) * hoursInDay * time.Hour).Truncate(time.Second)
}

// GenerateDescription synthesizes a sentence of 2 to 6 words
func (g *transactionGenerator) GenerateDescription() string {
	wordCount := g.rng.IntRange(minDescriptionWords, maxDescriptionWords)
	return strings.TrimSpace(g.text.LoremIpsumSentence(wordCount))
}

// GenerateRecord draws one independent transaction record
func (g *transactionGenerator) GenerateRecord(now time.Time) models.TransactionRecord {
	record := models.TransactionRecord{
		Amount:          g.GenerateAmount(),
		CategoryID:      g.SelectCategoryID(),
		TransactionDate: g.GenerateTransactionDate(now),
		Description:     g.GenerateDescription(),
	}

	// Descriptions are never empty; the category label stands in.
	if record.Description == "" {
		record.Description, _ = models.CategoryLabel(record.CategoryID)
	}

	return record
}

// WriteCSV writes the header followed by rowCount records. Each record is
// written as soon as it is drawn.
func (g *transactionGenerator) WriteCSV(ctx context.Context, w io.Writer, rowCount int) (int, error) {
	if rowCount < 0 {
		return 0, fixtureerrors.New(fixtureerrors.ValidationOutOfRange,
			fixtureerrors.WithDetails(fmt.Sprintf("row_count: must be zero or greater, got %d", rowCount)),
		)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(models.CSVHeader()); err != nil {
		return 0, fixtureerrors.Wrap(fixtureerrors.IOWriteFailed, err)
	}

	rowsWritten := 0
	for i := 0; i < rowCount; i++ {
		if err := ctx.Err(); err != nil {
			writer.Flush()
			return rowsWritten, fixtureerrors.Wrap(fixtureerrors.SystemUnexpectedError, err,
				fixtureerrors.WithMessage("Generation cancelled"),
			)
		}

		record := g.GenerateRecord(g.now())
		if err := writer.Write(record.CSVRow()); err != nil {
			return rowsWritten, fixtureerrors.Wrap(fixtureerrors.IOWriteFailed, err,
				fixtureerrors.WithDetails(fmt.Sprintf("row %d", i+1)),
			)
		}

		rowsWritten++
		g.metrics.IncrementCounter(MetricRowsGenerated, nil)
		g.metrics.RecordValue(MetricAmount, record.Amount.InexactFloat64(), nil)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return rowsWritten, fixtureerrors.Wrap(fixtureerrors.IOWriteFailed, err)
	}

	return rowsWritten, nil
}

// GenerateFile creates or truncates path and writes rowCount records to it.
// The file is closed whether or not generation succeeds; a failure part way
// through leaves a truncated file behind.
func (g *transactionGenerator) GenerateFile(ctx context.Context, path string, rowCount int) (result *GenerationResult, err error) {
	runID := uuid.New()
	startedAt := g.now()
	start := time.Now()
	rowsWritten := 0

	g.logger.LogGenerationStarted(ctx, runID, path, rowCount)
	defer func() {
		duration := time.Since(start)
		g.metrics.RecordProcessingTime(MetricGenerationDuration, duration)
		if err != nil {
			g.metrics.IncrementCounter(MetricGenerationRun, map[string]string{"status": "failed"})
			g.logger.LogGenerationFailed(ctx, runID, path, rowsWritten, err.Error(), duration.Milliseconds())
			return
		}
		g.metrics.IncrementCounter(MetricGenerationRun, map[string]string{"status": "success"})
		g.logger.LogGenerationCompleted(ctx, runID, path, rowsWritten, duration.Milliseconds())
	}()

	if rowCount < 0 {
		return nil, fixtureerrors.New(fixtureerrors.ValidationOutOfRange,
			fixtureerrors.WithPath(path),
			fixtureerrors.WithDetails(fmt.Sprintf("row_count: must be zero or greater, got %d", rowCount)),
		)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fixtureerrors.Wrap(fixtureerrors.IOCreateFailed, err, fixtureerrors.WithPath(path))
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			result = nil
			err = fixtureerrors.Wrap(fixtureerrors.IOCloseFailed, closeErr, fixtureerrors.WithPath(path))
		}
	}()

	rowsWritten, err = g.WriteCSV(ctx, file, rowCount)
	if err != nil {
		var fe *fixtureerrors.FixtureError
		if errors.As(err, &fe) && fe.Path == "" {
			fe.Path = path
		}
		return nil, err
	}

	return &GenerationResult{
		RunID:       runID,
		Path:        path,
		RowsWritten: rowsWritten,
		StartedAt:   startedAt,
		CompletedAt: g.now(),
	}, nil
}
