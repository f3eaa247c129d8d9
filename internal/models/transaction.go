package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDateLayout is the second-precision timestamp format used in fixture files
const TransactionDateLayout = "2006-01-02 15:04:05"

// Amount bounds for generated transactions. Negative amounts are debits.
var (
	MinTransactionAmount = decimal.NewFromInt(-500)
	MaxTransactionAmount = decimal.NewFromInt(500)
)

// AmountPlaces is the number of fractional digits written for amounts
const AmountPlaces = 2

var (
	ErrInvalidColumnCount = errors.New("invalid column count")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidCategoryID  = errors.New("invalid category id")
	ErrInvalidDate        = errors.New("invalid transaction date")
)

// CSVHeader returns the fixture file header in column order
func CSVHeader() []string {
	return []string{"amount", "category_id", "transaction_date", "description"}
}

// TransactionRecord is one synthetic transaction. Records are independent of
// each other and are discarded once written.
type TransactionRecord struct {
	Amount          decimal.Decimal
	CategoryID      int
	TransactionDate time.Time
	Description     string
}

// CSVRow renders the record in CSVHeader column order
func (r TransactionRecord) CSVRow() []string {
	return []string{
		r.Amount.StringFixed(AmountPlaces),
		strconv.Itoa(r.CategoryID),
		r.TransactionDate.Format(TransactionDateLayout),
		r.Description,
	}
}

// ParseTransactionRecord parses a row written by CSVRow. Dates are
// interpreted in loc.
func ParseTransactionRecord(row []string, loc *time.Location) (*TransactionRecord, error) {
	if len(row) != len(CSVHeader()) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidColumnCount, len(row), len(CSVHeader()))
	}

	amount, err := decimal.NewFromString(row[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, row[0], err)
	}

	categoryID, err := strconv.Atoi(row[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCategoryID, row[1], err)
	}

	date, err := time.ParseInLocation(TransactionDateLayout, row[2], loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDate, row[2], err)
	}

	return &TransactionRecord{
		Amount:          amount,
		CategoryID:      categoryID,
		TransactionDate: date,
		Description:     row[3],
	}, nil
}

// AmountInRange reports whether the amount lies within the generated bounds
func (r TransactionRecord) AmountInRange() bool {
	return r.Amount.GreaterThanOrEqual(MinTransactionAmount) && r.Amount.LessThanOrEqual(MaxTransactionAmount)
}
