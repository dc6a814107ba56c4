//go:build integration

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionworks/bidtable"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bids.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err, "writes test csv")

	return path
}

func TestLoadBids(t *testing.T) {
	t.Run("loads all rows and counts them", func(t *testing.T) {
		// Prepare
		csvPath := writeCSV(t,
			"Title,Bid Id,Department,Close Date,Winning Bid,CC Fee,Fee Percent,Auction Title,Fund\n"+
				"Office Chairs,98223,,,\"$174.50\",,,Fall Auction,General Fund\n"+
				"Forklift,98402,,,\"$69,772.61\",,,Fall Auction,Capital Fund\n")

		table, err := bidtable.NewHashTable(nil)
		require.NoError(t, err, "creates hash table")

		// Execute
		count, err := LoadBids(csvPath, '$', table)

		// Check
		assert.NoError(t, err, "loads csv file")
		assert.Equal(t, 2, count, "correct bid count")

		bid, err := table.Search("98223")
		assert.NoError(t, err, "finds first bid")
		assert.Equal(t, "Office Chairs", bid.Title, "correct title")
		assert.Equal(t, "General Fund", bid.Fund, "correct fund")
		assert.Equal(t, 174.50, bid.Amount, "correct amount")

		bid, err = table.Search("98402")
		assert.NoError(t, err, "finds second bid")
		assert.Equal(t, 69772.61, bid.Amount, "thousands separator handled")
	})

	t.Run("skips short rows without aborting the load", func(t *testing.T) {
		// Prepare
		csvPath := writeCSV(t,
			"Title,Bid Id,Department,Close Date,Winning Bid,CC Fee,Fee Percent,Auction Title,Fund\n"+
				"Truncated,11\n"+
				"Office Chairs,98223,,,$174.50,,,Fall Auction,General Fund\n")

		table, err := bidtable.NewHashTable(nil)
		require.NoError(t, err, "creates hash table")

		// Execute
		count, err := LoadBids(csvPath, '$', table)

		// Check
		assert.NoError(t, err, "loads csv file")
		assert.Equal(t, 1, count, "only complete rows counted")

		_, err = table.Search("11")
		assert.ErrorIs(t, err, bidtable.NoBidFound{}, "truncated row not loaded")

		_, err = table.Search("98223")
		assert.NoError(t, err, "row after the corrupt one still loaded")
	})

	t.Run("malformed amount loads as zero", func(t *testing.T) {
		// Prepare
		csvPath := writeCSV(t,
			"Title,Bid Id,Department,Close Date,Winning Bid,CC Fee,Fee Percent,Auction Title,Fund\n"+
				"Office Chairs,98223,,,n/a,,,Fall Auction,General Fund\n")

		table, err := bidtable.NewHashTable(nil)
		require.NoError(t, err, "creates hash table")

		// Execute
		count, err := LoadBids(csvPath, '$', table)

		// Check
		assert.NoError(t, err, "loads csv file")
		assert.Equal(t, 1, count, "row still counted")

		bid, err := table.Search("98223")
		assert.NoError(t, err, "finds bid")
		assert.Equal(t, 0.0, bid.Amount, "amount degraded to zero")
	})

	t.Run("header only file loads nothing", func(t *testing.T) {
		// Prepare
		csvPath := writeCSV(t, "Title,Bid Id,Department,Close Date,Winning Bid,CC Fee,Fee Percent,Auction Title,Fund\n")

		table, err := bidtable.NewHashTable(nil)
		require.NoError(t, err, "creates hash table")

		// Execute
		count, err := LoadBids(csvPath, '$', table)

		// Check
		assert.NoError(t, err, "loads csv file")
		assert.Equal(t, 0, count, "nothing counted")
		assert.False(t, table.All().HasNext(), "table still empty")
	})

	t.Run("error when file does not exist", func(t *testing.T) {
		// Prepare
		table, err := bidtable.NewHashTable(nil)
		require.NoError(t, err, "creates hash table")

		// Execute
		_, err = LoadBids(filepath.Join(t.TempDir(), "missing.csv"), '$', table)

		// Check
		assert.Error(t, err)
	})
}
