package services

import (
	"context"
	"io"
	"time"

	"txn-fixture-generator/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RandomSource supplies the bounded random draws used for fixture values.
// *gofakeit.Faker satisfies it.
type RandomSource interface {
	Float64Range(min, max float64) float64
	IntRange(min, max int) int
}

// TextSource synthesizes short pseudo-natural-language text. The sentence
// must contain exactly wordCount words. *gofakeit.Faker satisfies it.
type TextSource interface {
	LoremIpsumSentence(wordCount int) string
}

// MetricsRecorderInterface records generator metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	// RecordValue observes a single sampled value, such as a generated amount
	RecordValue(name string, value float64, tags map[string]string)
}

// FixtureGeneratorInterface generates synthetic transaction fixtures for testing
type FixtureGeneratorInterface interface {
	GenerateAmount() decimal.Decimal
	SelectCategoryID() int
	GenerateTransactionDate(now time.Time) time.Time
	GenerateDescription() string
	GenerateRecord(now time.Time) models.TransactionRecord

	// WriteCSV writes the header and rowCount records to w and returns the number of rows written
	WriteCSV(ctx context.Context, w io.Writer, rowCount int) (int, error)

	// GenerateFile creates or truncates path and fills it with rowCount records
	GenerateFile(ctx context.Context, path string, rowCount int) (*GenerationResult, error)
}

// FixtureLoggerInterface provides structured logging for fixture generation runs
type FixtureLoggerInterface interface {
	LogGenerationStarted(ctx context.Context, runID uuid.UUID, path string, rowCount int)
	LogGenerationCompleted(ctx context.Context, runID uuid.UUID, path string, rowsWritten int, durationMs int64)
	LogGenerationFailed(ctx context.Context, runID uuid.UUID, path string, rowsWritten int, errorMsg string, durationMs int64)
}
