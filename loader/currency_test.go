//go:build unit

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	t.Run("parses currency formatted text", func(t *testing.T) {
		// Prepare
		tests := []struct {
			text string
			want float64
		}{
			{text: "$69,772.61", want: 69772.61},
			{text: "$174.50", want: 174.50},
			{text: "174.50", want: 174.50},
			{text: " $1,000 ", want: 1000},
			{text: "$0.00", want: 0},
		}

		for _, test := range tests {
			// Execute
			amount := ParseCurrency(test.text, '$')

			// Check
			assert.Equal(t, test.want, amount, "correct amount for %q", test.text)
		}
	})

	t.Run("unparseable text yields zero", func(t *testing.T) {
		// Prepare
		tests := []string{"", "n/a", "$", "12..5", "USD 10"}

		for _, text := range tests {
			// Execute
			amount := ParseCurrency(text, '$')

			// Check
			assert.Equal(t, 0.0, amount, "zero amount for %q", text)
		}
	})

	t.Run("strips a non-dollar symbol", func(t *testing.T) {
		// Execute
		amount := ParseCurrency("€1.2345", '€')

		// Check
		assert.Equal(t, 1.2345, amount, "symbol stripped")
	})
}
