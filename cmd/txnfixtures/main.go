// Command txnfixtures writes a CSV file of synthetic transactions for tests.
//
// Usage:
//
//	txnfixtures [output-path] [row-count]
//
// Defaults to fake_transactions.csv and 50 rows.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"txn-fixture-generator/internal/config"
	fixtureerrors "txn-fixture-generator/internal/errors"
	"txn-fixture-generator/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus"
)

const usage = "usage: txnfixtures [output-path] [row-count]"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewJSONHandler(stderr, nil))

	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n%s\n", err, usage)
		return fixtureerrors.ExitCode(err)
	}

	faker := gofakeit.New(0)
	generator := services.NewTransactionGenerator(faker, faker,
		services.WithFixtureLogger(services.NewFixtureLogger(logger)),
		services.WithMetricsRecorder(services.NewPrometheusMetrics(prometheus.NewRegistry())),
	)

	result, err := generator.GenerateFile(ctx, cfg.Generator.OutputPath, cfg.Generator.RowCount)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return fixtureerrors.ExitCode(err)
	}

	fmt.Fprintln(stdout, result.ConfirmationMessage())
	return fixtureerrors.ExitOK
}
