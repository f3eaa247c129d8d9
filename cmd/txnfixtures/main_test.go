package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fixtureerrors "txn-fixture-generator/internal/errors"
	"txn-fixture-generator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestRun_DefaultRowCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var stdout, stderr bytes.Buffer

	start := time.Now()
	code := run(context.Background(), []string{path}, &stdout, &stderr)
	end := time.Now()

	require.Equal(t, fixtureerrors.ExitOK, code, stderr.String())
	assert.Equal(t, "50 fake transactions written to "+path+"\n", stdout.String())

	got := lines(t, path)
	require.Len(t, got, 51)
	assert.Equal(t, "amount,category_id,transaction_date,description", got[0])

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 51)

	earliest := start.Add(-180 * 24 * time.Hour).Truncate(time.Second)
	for _, row := range rows[1:] {
		record, err := models.ParseTransactionRecord(row, time.Local)
		require.NoError(t, err, row)
		assert.True(t, record.AmountInRange(), row)
		assert.True(t, models.IsValidCategoryID(record.CategoryID), row)
		assert.False(t, record.TransactionDate.Before(earliest), row)
		assert.False(t, record.TransactionDate.After(end), row)
		assert.NotEmpty(t, record.Description, row)
	}
}

func TestRun_ZeroRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{path, "0"}, &stdout, &stderr)

	require.Equal(t, fixtureerrors.ExitOK, code, stderr.String())
	assert.Equal(t, "0 fake transactions written to "+path+"\n", stdout.String())
	assert.Equal(t, []string{"amount,category_id,transaction_date,description"}, lines(t, path))
}

func TestRun_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{path, "5"}, &stdout, &stderr)

	assert.Equal(t, fixtureerrors.ExitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Failed to create output file")
	assert.Contains(t, stderr.String(), "fixture_generation_failed")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "non-integer rows", args: []string{"out.csv", "many"}},
		{name: "negative rows", args: []string{"out.csv", "-4"}},
		{name: "extra args", args: []string{"out.csv", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)

			assert.Equal(t, fixtureerrors.ExitUsageError, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), usage)
		})
	}
}
