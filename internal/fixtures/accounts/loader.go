// Package accounts provides the embedded demo accounts used to seed a fresh ledger.
package accounts

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

//go:embed accounts.csv
var accountsCSV string

const expectedColumns = 5

// Seed describes one demo account: it is opened, funded with Balance and
// then moved to Status.
type Seed struct {
	OwnerName   string
	Currency    money.Code
	Balance     decimal.Decimal
	Status      account.Status
	Description string
}

// LoadAccountsCSV loads demo accounts from a CSV file or embedded content.
// If path is empty, it uses the embedded CSV content.
func LoadAccountsCSV(path string) ([]Seed, error) {
	var r io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	} else {
		r = strings.NewReader(accountsCSV)
	}

	return parseAccountsCSV(r)
}

func parseAccountsCSV(r io.Reader) ([]Seed, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("invalid CSV format: missing header")
	}
	if len(records[0]) < expectedColumns {
		return nil, fmt.Errorf(
			"invalid CSV format: expected at least %d columns, got %d",
			expectedColumns,
			len(records[0]),
		)
	}

	seeds := make([]Seed, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < expectedColumns {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", line, expectedColumns, len(rec))
		}
		code, err := money.ParseCode(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil || balance.IsNegative() || money.Scale(balance) > money.MaxScale {
			return nil, fmt.Errorf("line %d: %w: balance %q", line, money.ErrInvalidAmount, rec[2])
		}
		status, err := account.ParseStatus(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		seeds = append(seeds, Seed{
			OwnerName:   strings.TrimSpace(rec[0]),
			Currency:    code,
			Balance:     balance,
			Status:      status,
			Description: strings.TrimSpace(rec[4]),
		})
	}
	return seeds, nil
}
