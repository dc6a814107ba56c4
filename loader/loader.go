package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auctionworks/bidtable"
)

// Column layout of the monthly sales CSV export
const (
	columnTitle  = 0
	columnBidID  = 1
	columnAmount = 4
	columnFund   = 8
)

// minColumns - A row needs at least this many columns to carry all four bid fields
const minColumns = columnFund + 1

// LoadBids - Reads bids from a CSV file and inserts them into the given hash table.
// The first row is treated as a header and skipped. A row that cannot be read or that
// is missing columns is reported and skipped, it never aborts the remaining load.
//   - csvPath is the path to the CSV file to load
//   - symbol is the currency symbol to strip from amount fields
//   - table is the hash table to insert the bids into
//
// It returns:
//   - count is the number of bids handed to the table
//   - err is a standard Go error if the file could not be opened or the header not read
func LoadBids(csvPath string, symbol rune, table *bidtable.HashTable) (count int, err error) {
	f, err := os.Open(csvPath)
	if err != nil {
		err = fmt.Errorf("error while opening csv file: %s", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// Header row
	_, err = reader.Read()
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("error while reading csv header: %s", err)
		return
	}

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			log.Printf("skipping unreadable csv row: %v", readErr)
			continue
		}
		if len(row) < minColumns {
			log.Printf("skipping csv row with %d columns, need at least %d", len(row), minColumns)
			continue
		}

		table.Insert(bidtable.Bid{
			BidID:  row[columnBidID],
			Title:  row[columnTitle],
			Fund:   row[columnFund],
			Amount: ParseCurrency(row[columnAmount], symbol),
		})
		count++
	}

	return
}

// ParseCurrency - Converts currency formatted text to an amount. Every occurrence of the
// given currency symbol and any thousands separators are stripped before parsing. Text
// that still does not parse yields 0.0, a malformed amount never fails a load.
//   - s is the currency formatted text, e.g. "$69,772.61"
//   - symbol is the currency symbol to strip
func ParseCurrency(s string, symbol rune) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == symbol || r == ',' {
			return -1
		}
		return r
	}, s)

	d, err := decimal.NewFromString(strings.TrimSpace(cleaned))
	if err != nil {
		return 0.0
	}

	amount, _ := d.Float64()
	return amount
}
